package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// separator делит строку на путь и значение
const separator = " = "

var (
	// ErrMalformedLine строка не содержит разделителя " = "
	ErrMalformedLine = errors.New("malformed line")
	// ErrEmptyPath путь из нуля сегментов, недостижимо при корректном split
	ErrEmptyPath = errors.New("empty key path")
)

// Node это один узел разобранного лога: либо листовое значение,
// либо вложенная запись. Порядок вставки ключей сохраняется.
type Node struct {
	leaf  bool
	value string

	keys     []string
	children map[string]*Node
}

func newBranch() *Node {
	return &Node{children: make(map[string]*Node)}
}

// IsLeaf сообщает, хранит ли узел значение, а не вложенную запись.
func (n *Node) IsLeaf() bool { return n.leaf }

// Value возвращает значение листа. Для вложенной записи это пустая строка.
func (n *Node) Value() string { return n.value }

// Keys возвращает ключи вложенной записи в порядке первой вставки.
func (n *Node) Keys() []string { return n.keys }

// Child возвращает вложенный узел по ключу.
func (n *Node) Child(key string) (*Node, bool) {
	child, ok := n.children[key]
	return child, ok
}

// set спускается по пути, создавая недостающие записи, и кладёт значение
// в последний сегмент. Прежнее значение или поддерево молча затирается,
// последняя запись в логе выигрывает.
func (n *Node) set(path []string, value string) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	cur := n
	for _, seg := range path[:len(path)-1] {
		next, ok := cur.children[seg]
		if !ok || next.leaf {
			next = newBranch()
			if !ok {
				cur.keys = append(cur.keys, seg)
			}
			cur.children[seg] = next
		}
		cur = next
	}

	last := path[len(path)-1]
	if _, ok := cur.children[last]; !ok {
		cur.keys = append(cur.keys, last)
	}
	cur.children[last] = &Node{leaf: true, value: value}

	return nil
}

// ReadRecord читает строки вида "a.b.c = value" до конца потока и собирает
// из них вложенную запись. Можно вызывать повторно с тем же узлом, чтобы
// дочитать следующий файл в ту же запись.
func ReadRecord(r io.Reader, root *Node) error {
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())

		idx := strings.Index(line, separator)
		if idx < 0 {
			return fmt.Errorf("line %d: %q: %w", lineNum, line, ErrMalformedLine)
		}

		path := strings.Split(line[:idx], ".")
		value := line[idx+len(separator):]

		if err := root.set(path, value); err != nil {
			return fmt.Errorf("line %d: %q: %w", lineNum, line, err)
		}
	}

	return scanner.Err()
}

// NewRecord возвращает пустую корневую запись.
func NewRecord() *Node {
	return newBranch()
}
