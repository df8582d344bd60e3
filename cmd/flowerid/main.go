// flowerid 是一个本地的 ID 工具
//
// 用法：
//
//	flowerid mint [-g generator] [-n count] [-unit millisecond|second]
//	flowerid inspect <id>...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jimmicro/version"

	"github.com/jimyag/flowerid/pkg/fid"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "mint":
		mint(os.Args[2:])
	case "inspect":
		inspect(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: flowerid mint [-g generator] [-n count] [-unit millisecond|second]")
	fmt.Fprintln(os.Stderr, "       flowerid inspect <id>...")
	os.Exit(2)
}

func mint(args []string) {
	fs := flag.NewFlagSet("mint", flag.ExitOnError)
	generator := fs.Uint("g", 0, "generator id, 0..1023")
	count := fs.Int("n", 1, "number of ids to mint")
	unit := fs.String("unit", "millisecond", "timestamp unit: millisecond or second")
	_ = fs.Parse(args)

	var u fid.Unit
	switch *unit {
	case "millisecond":
		u = fid.UnitMillisecond
	case "second":
		u = fid.UnitSecond
	default:
		log.Fatalf("unknown unit %q", *unit)
	}

	gen, err := fid.NewBuilder(uint16(*generator)).Unit(u).Build()
	if err != nil {
		log.Fatalf("failed to create generator: %v", err)
	}

	for i := 0; i < *count; i++ {
		id, err := gen.Next()
		if err != nil {
			log.Fatalf("failed to mint id: %v", err)
		}
		fmt.Printf("%s\t%d\n", id, id.Uint64())
	}
}

func inspect(args []string) {
	if len(args) == 0 {
		usage()
	}

	for _, raw := range args {
		id, err := fid.FromString(raw)
		if err != nil {
			var v uint64
			if _, serr := fmt.Sscanf(raw, "%d", &v); serr != nil {
				log.Fatalf("malformed id %q: %v", raw, err)
			}
			id = fid.FromUint64(v)
		}

		// 按默认纪元（2017-01-01）和毫秒刻度解释 timestamp
		wall := time.UnixMilli(int64(id.Timestamp()) - fid.DefaultEpochOffset*1000).UTC()

		fmt.Printf("id        %s\n", id)
		fmt.Printf("value     %d\n", id.Uint64())
		fmt.Printf("timestamp %d\n", id.Timestamp())
		fmt.Printf("sequence  %d\n", id.Sequence())
		fmt.Printf("generator %d\n", id.Generator())
		fmt.Printf("time      %s\n", wall.Format(time.RFC3339Nano))
	}
}
