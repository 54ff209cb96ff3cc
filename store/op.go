// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package store

// OpType defines the kind of a transaction operation
type OpType int

const (
	// OpTypeCreate creates a node that must not exist
	OpTypeCreate OpType = iota + 1
	// OpTypePut creates or overwrites a node
	OpTypePut
	// OpTypeDelete removes a node and its subtree
	OpTypeDelete
	// OpTypeCheckVersion asserts the node version
	OpTypeCheckVersion
	// OpTypeCheckValue asserts the node value
	OpTypeCheckValue
	// OpTypeCheckExists asserts the node is present
	OpTypeCheckExists
	// OpTypeCheckAbsent asserts the node is missing
	OpTypeCheckAbsent
)

// Op is a single operation of a Commit
type Op struct {
	Type    OpType
	Path    string
	Value   []byte
	Mode    Mode
	Version int64
}

// IsCheck reports whether the operation is a guard rather than a write
func (o Op) IsCheck() bool {
	switch o.Type {
	case OpTypeCheckVersion, OpTypeCheckValue, OpTypeCheckExists, OpTypeCheckAbsent:
		return true
	default:
		return false
	}
}

// OpCreate creates the node, the whole commit fails when it exists
func OpCreate(path string, value []byte, mode Mode) Op {
	return Op{Type: OpTypeCreate, Path: path, Value: value, Mode: mode}
}

// OpPut creates or overwrites the node
func OpPut(path string, value []byte, mode Mode) Op {
	return Op{Type: OpTypePut, Path: path, Value: value, Mode: mode}
}

// OpDelete removes the node and its subtree
func OpDelete(path string) Op {
	return Op{Type: OpTypeDelete, Path: path}
}

// OpCheckVersion guards the commit on the node version
func OpCheckVersion(path string, version int64) Op {
	return Op{Type: OpTypeCheckVersion, Path: path, Version: version}
}

// OpCheckValue guards the commit on the node value
func OpCheckValue(path string, value []byte) Op {
	return Op{Type: OpTypeCheckValue, Path: path, Value: value}
}

// OpCheckExists guards the commit on the node being present
func OpCheckExists(path string) Op {
	return Op{Type: OpTypeCheckExists, Path: path}
}

// OpCheckAbsent guards the commit on the node being missing
func OpCheckAbsent(path string) Op {
	return Op{Type: OpTypeCheckAbsent, Path: path}
}
