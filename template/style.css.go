package template

// StyleCSS is the default stylesheet of generated books.
const StyleCSS = `
body {
  margin: 0 auto;
  padding: 0 1em;
  line-height: 1.8;
  text-align: justify;
}

h1 {
  font-size: 1.4em;
  margin: 2em 0 1.5em;
  font-weight: bold;
}

p {
  margin: 0;
  min-height: 1em;
}

ruby rt {
  font-size: 0.5em;
}

nav ol {
  list-style: none;
  padding-left: 0;
}

nav li {
  margin: 0.4em 0;
}
`
