package artgo_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/dataset"
)

func Example() {
	m := dataset.Purchases()

	eng, err := artgo.New(m.Features, m.Len(), artgo.WithVigilance(0.6), artgo.WithBeta(1))
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Assign(m.Rows)
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range res.Clusters() {
		fmt.Println(c.ID, c.Members)
	}
	fmt.Println("passes:", res.Passes, "converged:", res.Converged)

	// Output:
	// 0 [0 7 9]
	// 1 [1 3 5 11]
	// 2 [2 4 6 10]
	// 5 [8]
	// 6 [12]
	// 7 [13]
	// passes: 3 converged: true
}

func ExampleEngine_Step() {
	m := dataset.Purchases()

	eng, err := artgo.New(m.Features, m.Len(), artgo.WithMaxPasses(1))
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Assign(m.Rows)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Converged, res.Err())

	for !res.Converged {
		if res, err = eng.Step(); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println(res.Passes, res.NumClusters())

	// Output:
	// false clustering did not converge after 1 passes
	// 3 6
}
