// Package tree builds an in-memory tree of the template repository and
// applies the placeholder substitutions to every file in it.
package tree

// Kind tags the variant held by a Node.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Node is either a file or a directory. Exactly one of File and Dir is set,
// matching Kind.
type Node struct {
	Kind Kind
	File *FileNode
	Dir  *DirNode
}

// FileNode is a regular file discovered during a scan. Path and Name are
// updated in place when the file is renamed.
type FileNode struct {
	Path string
	Name string
}

// DirNode is a scanned directory. Directories are never renamed.
type DirNode struct {
	Path     string
	Children []Node
}

func fileNode(path, name string) Node {
	return Node{Kind: KindFile, File: &FileNode{Path: path, Name: name}}
}

func dirNode(d *DirNode) Node {
	return Node{Kind: KindDir, Dir: d}
}

// Files returns every file under d in traversal order.
func (d *DirNode) Files() []*FileNode {
	var out []*FileNode
	for _, child := range d.Children {
		switch child.Kind {
		case KindFile:
			out = append(out, child.File)
		case KindDir:
			out = append(out, child.Dir.Files()...)
		}
	}
	return out
}
