package common

import (
	"fmt"
	"regexp"
)

// OrderIDLength is the number of decimal digits in a valid order number.
const OrderIDLength = 7

var orderIDPattern = regexp.MustCompile(`^[0-9]{7}$`)

// ValidateOrderID checks that raw is exactly seven decimal digits. The error
// message is user-facing: it is relayed to the chat that submitted the order.
func ValidateOrderID(raw string) error {
	if orderIDPattern.MatchString(raw) {
		return nil
	}
	return NewAppError(
		"BAD_ORDER_ID",
		fmt.Sprintf("%s - неправильный номер заказа. Ваш заказ должен состоять из %d цифр", raw, OrderIDLength),
		ErrValidation,
	)
}
