package mtree_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/meigma/mtree"
)

func ExampleReader() {
	const manifest = `
/set type=file uid=0 gid=0 mode=644
./.BUILDINFO time=1523250074.300237174 size=8602 md5digest=13c0a46c2fb9f18a1a237d4904b6916e
./.PKGINFO time=1523250074.276237110 size=682 md5digest=fdb9ac9040f2e78f3561f27e5b31c815
/set mode=755
./usr time=1523250049.905171912 type=dir
./usr/bin time=1523250065.373213293 type=dir
`
	r := mtree.NewReader(strings.NewReader(manifest))
	for entry, err := range r.Entries() {
		if err != nil {
			log.Fatal(err)
		}
		if entry.Params.Size != nil {
			fmt.Printf("%s %s %d\n", entry.Path, entry.Params.Mode, *entry.Params.Size)
		} else {
			fmt.Printf("%s %s\n", entry.Path, entry.Params.Mode)
		}
	}
	// Output:
	// ./.BUILDINFO rw-r--r-- 8602
	// ./.PKGINFO rw-r--r-- 682
	// ./usr rwxr-xr-x
	// ./usr/bin rwxr-xr-x
}
