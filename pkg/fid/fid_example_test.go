package fid_test

import (
	"fmt"

	"github.com/jimyag/flowerid/pkg/fid"
)

func ExampleNew() {
	id, err := fid.New(3020801146913, 37, 160)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(id)
	fmt.Println(id.Uint64())
	// Output:
	// V-q48AQglKA
	// 6335079166850929824
}

func ExampleFromString() {
	id, err := fid.FromString("V-q48AQglKA")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(id.Timestamp())
	fmt.Println(id.Sequence())
	fmt.Println(id.Generator())
	// Output:
	// 3020801146913
	// 37
	// 160
}

func ExampleGenerator_Next() {
	gen, err := fid.NewBuilder(42).Build()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	id, err := gen.Next()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// 文本形式总是 11 个字符，generator 字段回读为 42
	fmt.Println(len(id.String()))
	fmt.Println(id.Generator())
	// Output:
	// 11
	// 42
}
