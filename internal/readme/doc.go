// Package readme renders the generated project's README.md, embedding the
// project name and the literal scaffold directory into pasteable
// configuration snippets.
package readme
