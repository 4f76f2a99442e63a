package readme

import (
	"bytes"
	"text/template"
)

// FileName is the documentation file written at the destination root. It
// overwrites any README copied from the template tree.
const FileName = "README.md"

var readmeTmpl = template.Must(template.New("readme").Parse(`# {{.Name}}

A TypeScript server scaffolded by StackForge.

## Getting started

` + "```sh" + `
npm install
npm run dev
` + "```" + `

## Scripts

| Script | What it does |
| --- | --- |
| ` + "`npm start`" + ` | Run the built server with Node |
| ` + "`npm run start:bun`" + ` | Run the built server with Bun |
| ` + "`npm run build`" + ` | Bundle with esbuild, falling back to tsc |
| ` + "`npm run build:http`" + ` | Bundle the HTTP entry point |
| ` + "`npm run dev`" + ` | Watch-mode development server |
| ` + "`npm run dev:http`" + ` | Watch-mode HTTP development server |

## Running under a process manager

Paste this into ` + "`ecosystem.config.cjs`" + ` to run {{.Name}} under pm2.
The ` + "`cwd`" + ` below is the directory this project was scaffolded in:

` + "```js" + `
module.exports = {
  apps: [
    {
      name: "{{.Name}}",
      script: "dist/index.js",
      cwd: "{{.Dir}}",
    },
  ],
};
` + "```" + `

Or point any supervisor at the built entry point directly:

` + "```sh" + `
node {{.Dir}}/dist/index.js
` + "```" + `
`))

// Build renders the project documentation. It is a pure function of the
// project name and the invocation path; the path is interpolated verbatim so
// the configuration snippets are pasteable as-is.
func Build(projectName, invocationPath string) string {
	var buf bytes.Buffer
	// The template is static and the data is two strings; execution cannot fail.
	_ = readmeTmpl.Execute(&buf, struct {
		Name string
		Dir  string
	}{Name: projectName, Dir: invocationPath})
	return buf.String()
}
