package vecknn_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/vecknn"
	"github.com/hupe1980/vecknn/vector"
)

// ExampleFindKNN classifies a viewer by the genre of the most similar viewer.
func ExampleFindKNN() {
	samples := []*vecknn.Sample{
		vecknn.NewSample("action", vector.MustNew(1, 3, 5, 3, 4, 2)),
		vecknn.NewSample("horror", vector.MustNew(5, 1, 1, 2, 5, 2)),
		vecknn.NewSample("comedy", vector.MustNew(2, 2, 3, 3, 2, 2)),
		vecknn.NewSample("action", vector.MustNew(1, 1, 4, 5, 5, 2)),
		vecknn.NewSample("comedy", vector.MustNew(3, 3, 2, 4, 1, 2)),
	}

	label, ok, err := vecknn.FindKNN(1, samples, vector.MustNew(4, 3, 4, 2, 1, 2))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(label, ok)
	// Output: comedy true
}

// ExampleClassifier_Classify shows the per-label vote weights.
func ExampleClassifier_Classify() {
	samples := []*vecknn.Sample{
		vecknn.NewSample("A", vector.MustNew(2)),
		vecknn.NewSample("A", vector.MustNew(4)),
		vecknn.NewSample("B", vector.MustNew(1)),
	}

	res, err := vecknn.New().Classify(context.Background(), 3, samples, vector.MustNew(0))
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range res.Votes {
		fmt.Printf("%s %.2f\n", v.Label, v.Weight)
	}
	fmt.Println("winner:", res.Label)
	// Output:
	// B 1.00
	// A 0.75
	// winner: B
}
