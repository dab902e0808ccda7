// Package validation evaluates the promotion wizard and login form rules.
// Rules never throw: each check walks every field and returns the full
// field→message map, so a caller can surface all violations at once.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/avillega/petstore-admin/internal/models"
)

// Credentials is the login/registration form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// messages maps "field tag" pairs to the user-facing message. Note the
// distinct messages for the two discount bounds.
var messages = map[string]string{
	"name required":        "Nombre requerido",
	"description required": "Descripción requerida",
	"category required":    "Categoría requerida",
	"category oneof":       "Categoría requerida",
	"discount gte":         "El descuento debe ser mayor a 0",
	"discount lte":         "El descuento no puede ser mayor a 100",
	"startDate required":   "Fecha de inicio requerida",
	"endDate required":     "Fecha de fin requerida",
	"selectedProducts min": "Debes seleccionar al menos un producto",
	"email required":       "Email requerido",
	"email email":          "Email inválido",
	"password required":    "Contraseña requerida",
}

// Validator wraps the rule engine with the application's field naming and
// message translation.
type Validator struct {
	validate *validator.Validate
}

// New constructs a Validator that reports fields by their json names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
		return fld.Name
	})
	return &Validator{validate: v}
}

// Step1 checks the basic-info fields of the wizard's first step: name,
// description, category, discount bounds and both dates. The product
// selection is step 2's concern and is excluded here.
func (v *Validator) Step1(d models.PromotionDraft) map[string]string {
	return v.translate(v.validate.StructExcept(d, "SelectedProducts"))
}

// Step2 checks the product-selection rule of the wizard's second step.
func (v *Validator) Step2(d models.PromotionDraft) map[string]string {
	return v.translate(v.validate.StructPartial(d, "SelectedProducts"))
}

// Draft checks every rule of both steps. Both save paths (create and
// edit) must pass this before the collection manager is called.
func (v *Validator) Draft(d models.PromotionDraft) map[string]string {
	return v.translate(v.validate.Struct(d))
}

// Update checks the provided fields of a partial edit. Absent fields are
// skipped; a provided field obeys the same rule as on creation.
func (v *Validator) Update(u models.PromotionUpdate) map[string]string {
	out := map[string]string{}
	if u.Name != nil && *u.Name == "" {
		out["name"] = messages["name required"]
	}
	if u.Description != nil && *u.Description == "" {
		out["description"] = messages["description required"]
	}
	if u.Category != nil && !u.Category.Valid() {
		out["category"] = messages["category required"]
	}
	if u.Discount != nil {
		if *u.Discount < 1 {
			out["discount"] = messages["discount gte"]
		} else if *u.Discount > 100 {
			out["discount"] = messages["discount lte"]
		}
	}
	if u.StartDate != nil && *u.StartDate == "" {
		out["startDate"] = messages["startDate required"]
	}
	if u.EndDate != nil && *u.EndDate == "" {
		out["endDate"] = messages["endDate required"]
	}
	if u.SelectedProducts != nil && len(*u.SelectedProducts) == 0 {
		out["selectedProducts"] = messages["selectedProducts min"]
	}
	return out
}

// Login checks the login/registration form fields.
func (v *Validator) Login(c Credentials) map[string]string {
	return v.translate(v.validate.Struct(c))
}

// translate turns validator output into the field→message map. Unmapped
// violations get a generic per-field message rather than leaking tag
// internals.
func (v *Validator) translate(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		if msg, ok := messages[fe.Field()+" "+fe.ActualTag()]; ok {
			out[fe.Field()] = msg
		} else {
			out[fe.Field()] = fmt.Sprintf("El campo %s no es válido", fe.Field())
		}
	}
	return out
}
