package aggregate_test

import (
	"fmt"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/dataset"
)

func ExampleCount() {
	ds := &dataset.Dataset{
		Agencies:  []dataset.Agency{{Name: "DOL"}, {Name: "EPA"}},
		Companies: []dataset.Company{{Name: "Tesla"}, {Name: "SpaceX"}},
		Relations: map[string][]string{"DOL": {"Tesla", "SpaceX"}, "EPA": {"Tesla"}},
	}

	counts := aggregate.Count(ds)
	for _, c := range aggregate.Rank(ds.CompanyNames(), counts) {
		fmt.Println(c, aggregate.Caption(counts.Of(c)))
	}
	// Output:
	// Tesla 2 agencies
	// SpaceX 1 agency
}
