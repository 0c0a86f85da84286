package validator

import (
	"log"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// RegisterGinValidator reports field errors under their json/form names and
// adds the notblank tag to gin's validator engine.
func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := tagName(fld, "json")
			if name == "" {
				name = tagName(fld, "form")
			}
			return name
		})
		err := v.RegisterValidation("notblank", validators.NotBlank)
		if err != nil {
			log.Fatal("register notblank validator failed")
		}
	}
}

func tagName(fld reflect.StructField, key string) string {
	name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
