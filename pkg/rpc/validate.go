package rpc

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	sharedValidator *validator.Validate
)

// getValidator returns a process-wide validator.Validate with the custom
// "bigint" tag registered, used by the *Request structs in api.go to
// reject amount fields that cannot be parsed as base-10 integers.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		if err := v.RegisterValidation("bigint", func(fl validator.FieldLevel) bool {
			n := new(big.Int)
			_, ok := n.SetString(fmt.Sprint(fl.Field().Interface()), 10)
			return ok
		}); err != nil {
			panic(fmt.Sprintf("failed to register bigint validation: %v", err))
		}
		sharedValidator = v
	})
	return sharedValidator
}

// Validate runs struct-tag validation on an outbound request's parameter
// struct before it is signed and sent. PreparePayload calls it for every
// non-nil parameter value, so a malformed request never reaches the wire.
func Validate(v any) error {
	if err := getValidator().Struct(v); err != nil {
		return Errorf("invalid request: %v", err)
	}
	return nil
}
