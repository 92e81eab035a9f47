package deb822_test

import (
	"fmt"
	"os"

	"github.com/deb822/deb822"
)

func ExampleUnmarshal() {
	data := []byte(`Package: bitcoind
Description: peer-to-peer network based digital currency
 Full node implementation.

Package: lnd
Description: lightning network daemon
`)

	type pkg struct {
		Package     string `deb822:"Package"`
		Description string `deb822:"Description"`
	}

	var pkgs []pkg
	if err := deb822.Unmarshal(data, &pkgs); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range pkgs {
		fmt.Println(p.Package)
	}
	// Output:
	// bitcoind
	// lnd
}

func ExampleMarshal() {
	type pkg struct {
		Package string   `deb822:"Package"`
		Depends []string `deb822:"Depends"`
	}

	out, err := deb822.Marshal(pkg{
		Package: "bitcoind",
		Depends: []string{"libc6", "libssl1.1"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	os.Stdout.Write(out)
	// Output:
	// Package: bitcoind
	// Depends: libc6,
	//          libssl1.1
}

func ExampleEncoder() {
	type pkg struct {
		Package string `deb822:"Package"`
	}

	enc := deb822.NewEncoder(os.Stdout)
	enc.Encode(pkg{Package: "bitcoind"})
	enc.Encode(pkg{Package: "lnd"})
	// Output:
	// Package: bitcoind
	//
	// Package: lnd
}
