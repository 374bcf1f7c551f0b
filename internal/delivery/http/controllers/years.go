package controllers

import (
	"fmt"
	"time"
)

const minBatchYear = 1900

// validateYearRange checks the batch year pair shared by blog and broadcast
// creates: ordering plus bounds of [1900, currentYear+10].
func validateYearRange(fromYear, toYear int) []string {
	var errs []string
	if fromYear > toYear {
		errs = append(errs, "fromYear cannot be greater than toYear")
		return errs
	}
	maxYear := time.Now().Year() + 10
	if fromYear < minBatchYear || fromYear > maxYear || toYear < minBatchYear || toYear > maxYear {
		errs = append(errs, fmt.Sprintf("Invalid year range. Years must be between %d and %d", minBatchYear, maxYear))
	}
	return errs
}
