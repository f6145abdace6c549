package kmeans_test

import (
	"fmt"

	"github.com/hupe1980/kmeans"
)

func ExampleFit() {
	points := [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}

	centroids, err := kmeans.Fit(points, 2, 10, 0.001)
	if err != nil {
		panic(err)
	}

	for _, c := range centroids {
		fmt.Printf("%.4f,%.4f\n", c[0], c[1])
	}
	// Output:
	// 0.0000,0.5000
	// 10.0000,10.5000
}

func ExampleFitJSON() {
	out, err := kmeans.FitJSON([]byte(`{"points":[[0],[1],[9],[10]],"k":2,"max_iter":10,"epsilon":0.001}`))
	if err != nil {
		panic(err)
	}

	fmt.Println(string(out))
	// Output:
	// {"centroids":[[0.5],[9.5]],"iterations":3,"converged":true}
}
