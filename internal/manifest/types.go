package manifest

// FileName is the manifest file written at the destination root.
const FileName = "package.json"

// PackageJSON is the project descriptor serialized as the scaffolded
// project's package.json. Map-valued fields serialize with sorted keys, so
// encoding the same descriptor twice yields identical bytes.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}
