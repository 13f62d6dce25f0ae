package domain

// Receipt summarizes a completed purchase: what was bought, what it cost and
// the coins covering the buyer's remaining balance.
type Receipt struct {
	Total    int
	Product  Product
	Quantity int
	Change   []int
}
