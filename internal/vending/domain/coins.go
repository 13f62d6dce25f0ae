package domain

import "fmt"

// Denominations lists the accepted coin values in minor units, largest first
// so change-making can walk it greedily.
var Denominations = []int{100, 50, 20, 10, 5}

const smallestDenomination = 5

// ValidateCost enforces that product costs stay expressible in coins: a cost
// must be positive and a multiple of the smallest denomination, otherwise a
// purchase could leave a remainder no coin sequence can represent.
func ValidateCost(cost int) error {
	if cost <= 0 || cost%smallestDenomination != 0 {
		return &InvalidCostError{Msg: fmt.Sprintf("cost must be a positive multiple of %d", smallestDenomination)}
	}

	return nil
}

func ValidateCoin(coin int) error {
	for _, d := range Denominations {
		if coin == d {
			return nil
		}
	}

	return &InvalidCoinError{Msg: fmt.Sprintf("coin %d is not valid", coin)}
}

func ValidateCoins(coins []int) error {
	for _, coin := range coins {
		if err := ValidateCoin(coin); err != nil {
			return err
		}
	}

	return nil
}

func SumCoins(coins []int) int {
	sum := 0
	for _, coin := range coins {
		sum += coin
	}

	return sum
}

// MakeChange converts remainder into coins by repeatedly taking the largest
// denomination that still fits. The result is empty for a zero remainder.
func MakeChange(remainder int) ([]int, error) {
	if remainder < 0 {
		return nil, &UnrepresentableAmountError{Msg: fmt.Sprintf("remainder %d is negative", remainder)}
	}

	change := make([]int, 0)

	for remainder > 0 {
		picked := 0
		for _, d := range Denominations {
			if d <= remainder {
				picked = d
				break
			}
		}

		if picked == 0 {
			return nil, &UnrepresentableAmountError{
				Msg: fmt.Sprintf("remainder %d can not be represented with available coins", remainder),
			}
		}

		change = append(change, picked)
		remainder -= picked
	}

	return change, nil
}
