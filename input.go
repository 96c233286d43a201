package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lifetimer/lifetimer/pkg/countdown"
)

var errEmptyYears = errors.New("please enter how many years you think you have left")

// parseYears turns the window's text entry into a validated year count
func parseYears(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, errEmptyYears
	}

	years, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", input)
	}

	if err := countdown.ValidateYears(years); err != nil {
		return 0, err
	}
	return years, nil
}
