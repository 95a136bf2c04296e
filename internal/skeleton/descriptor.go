package skeleton

import "path/filepath"

// Kind discriminates node types in the skeleton descriptor.
type Kind int

const (
	// KindDir is a directory node, created with MkdirAll semantics.
	KindDir Kind = iota
	// KindFile is a file node, created only when absent.
	KindFile
)

// Node is one entry in the skeleton descriptor: a path relative to the
// project root, a kind, and (for files) the body written on first creation.
type Node struct {
	Path string
	Kind Kind
	Body string
}

// The two logical sides of the generated source tree.
const (
	sideFront = "Front"
	sideBack  = "Back"
)

var sides = []string{sideFront, sideBack}

// subdirs lists the five subdirectories under each side and their files
// beyond the init marker. Bodies are resolved per side by body().
var subdirs = []struct {
	name  string
	files []string
}{
	{"components", []string{"StageOne.py", "StageTwo.py", "StageThree.py"}},
	{"Logging", []string{"logging.py"}},
	{"Exceptions", []string{"exceptions.py"}},
	{"Constants", []string{"constants.py"}},
	{"Utils", []string{"utils.py"}},
}

// body returns the template content for a named file on the given side.
// Files without a template are created empty.
func body(side, file string) string {
	switch file {
	case "logging.py":
		return loggingBody(side)
	case "exceptions.py":
		return exceptionsBody(side)
	default:
		return ""
	}
}

// Nodes returns the full skeleton descriptor in creation order: parents
// always precede children, directories precede their files.
func Nodes() []Node {
	nodes := []Node{
		{Path: "configs", Kind: KindDir},
		{Path: filepath.Join("configs", "configuration.yml"), Kind: KindFile, Body: configTemplate},
		{Path: "src", Kind: KindDir},
		{Path: filepath.Join("src", "__init__.py"), Kind: KindFile},
	}

	for _, side := range sides {
		sideDir := filepath.Join("src", side)
		nodes = append(nodes,
			Node{Path: sideDir, Kind: KindDir},
			Node{Path: filepath.Join(sideDir, "__init__.py"), Kind: KindFile},
		)

		for _, sub := range subdirs {
			subDir := filepath.Join(sideDir, sub.name)
			nodes = append(nodes,
				Node{Path: subDir, Kind: KindDir},
				Node{Path: filepath.Join(subDir, "__init__.py"), Kind: KindFile},
			)
			for _, file := range sub.files {
				nodes = append(nodes, Node{
					Path: filepath.Join(subDir, file),
					Kind: KindFile,
					Body: body(side, file),
				})
			}
		}
	}

	return nodes
}
