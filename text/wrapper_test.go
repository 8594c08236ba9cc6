package text

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"hameln-publish/model"
)

func TestBodyText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraphs", "<p id=1>　一行目</p>\n<p id=2>二行目</p>", "　一行目\n二行目"},
		{"br", "上<br>下", "上\n下"},
		{"ruby", "<p><ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>です</p>", "漢字です"},
		{"entities", "<p>A&amp;B &lt;C&gt;</p>", "A&B <C>"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BodyText(tt.in)
			if err != nil {
				t.Fatalf("BodyText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BodyText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	novel := &model.Novel{
		Title:  "題名",
		Author: "作者",
		Episodes: []model.Episode{
			{Title: "一", Body: "<p>本文一</p>"},
			{Title: "二", Body: "<p>本文二</p>"},
		},
	}
	var buf bytes.Buffer
	if err := Write(&buf, novel); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "題名\n作者\n\n\n一\n\n本文一\n\n\n二\n\n本文二\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestWriter_Assemble(t *testing.T) {
	dir := t.TempDir()
	path, err := Writer{}.Assemble(&model.Novel{Title: "A/B", Author: "C", Episodes: []model.Episode{}}, dir)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if want := filepath.Join(dir, "[C] A_B.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "A/B\nC\n" {
		t.Errorf("content = %q", data)
	}
}
