package match_test

import (
	"fmt"

	"github.com/joshuanunn/algorithms-unlocked/match"
)

// ExampleStateTable_Find locates every occurrence of "AAC" in the
// book's example text.
func ExampleStateTable_Find() {
	st, err := match.NewStateTable("GTAACAGTAAACG", "AAC")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(st.Find("GTAACAGTAAACG"))
	// Output:
	// [2 9]
}
