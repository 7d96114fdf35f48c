package dataset

// Purchases returns the customer purchase matrix: 14 customers by 11
// products, 1 meaning the customer bought the product.
func Purchases() *Matrix {
	return &Matrix{
		Features: 11,
		Rows: [][]uint8{
			{0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0},
			{0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1},
			{0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
			{0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1},
			{1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0},
			{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1},
			{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
			{0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0},
			{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0},
			{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1},
			{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		},
	}
}
