package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/arloliu/numser/codec"
	"github.com/arloliu/numser/format"
)

// typeOps binds the generic codec calls to one element type chosen at run time.
type typeOps struct {
	dump func(path string, nested bool, w io.Writer) error
	gen  func(path string, count int, start, step float64) error
}

var registry = map[string]typeOps{
	format.TypeName[int8]():    opsFor[int8](),
	format.TypeName[uint8]():   opsFor[uint8](),
	format.TypeName[int16]():   opsFor[int16](),
	format.TypeName[uint16]():  opsFor[uint16](),
	format.TypeName[int32]():   opsFor[int32](),
	format.TypeName[uint32]():  opsFor[uint32](),
	format.TypeName[int64]():   opsFor[int64](),
	format.TypeName[uint64]():  opsFor[uint64](),
	format.TypeName[float32](): opsFor[float32](),
	format.TypeName[float64](): opsFor[float64](),
}

func typeNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func lookupType(name string) (typeOps, error) {
	ops, ok := registry[name]
	if !ok {
		return typeOps{}, fmt.Errorf("unsupported type %q, want one of %v", name, typeNames())
	}

	return ops, nil
}

func opsFor[T format.Number]() typeOps {
	return typeOps{
		dump: func(path string, nested bool, w io.Writer) error {
			bw := bufio.NewWriter(w)

			if nested {
				rows, err := codec.DeserializeNestedFile[T](path)
				if err != nil {
					return err
				}
				for i, row := range rows {
					fmt.Fprintf(bw, "[%d] %v\n", i, row)
				}
			} else {
				values, err := codec.DeserializeFile[T](path)
				if err != nil {
					return err
				}
				for _, v := range values {
					fmt.Fprintln(bw, v)
				}
			}

			return bw.Flush()
		},
		gen: func(path string, count int, start, step float64) error {
			values := make([]T, count)
			for i := range values {
				values[i] = T(start + float64(i)*step)
			}

			return codec.SerializeFile(path, values)
		},
	}
}
