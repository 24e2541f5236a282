package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/stockwise/core"
)

var (
	cnPhoneTag   = "cnphone"
	cnPhoneText  = "invalid mainland China mobile number"
	cnPhoneRegex = regexp.MustCompile(`^1\d{10}$`)

	// mobile prefixes currently allocated to carriers
	cnPhonePrefixes = map[string]bool{
		"130": true, "131": true, "132": true, "133": true, "134": true,
		"135": true, "136": true, "137": true, "138": true, "139": true,
		"145": true, "146": true, "147": true, "148": true, "149": true,
		"150": true, "151": true, "152": true, "153": true, "155": true,
		"156": true, "157": true, "158": true, "159": true,
		"165": true, "166": true,
		"172": true, "173": true, "174": true, "175": true, "176": true, "177": true, "178": true,
		"180": true, "181": true, "182": true, "183": true, "184": true,
		"185": true, "186": true, "187": true, "188": true, "189": true,
		"190": true, "191": true, "192": true, "193": true, "195": true,
		"196": true, "197": true, "198": true, "199": true,
	}

	// password policy
	pwdMinLen     = 6
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .8
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to your phone number or email"
)

// InitValidators registers the user validators and their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(cnPhoneTag, cnPhoneValidation)
	core.RegisterCustomTranslation(validate, translator, cnPhoneTag, cnPhoneText)

	validate.RegisterStructValidation(userStructValidation, NewUser{}, SetPassword{})
	core.RegisterCustomTranslation(validate, translator, pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(validate, translator, pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(validate, translator, pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(validate, translator, pwdAttrSimTag, pwdAttrSimText)
}

// IsValidChinaPhone checks that phone is an 11-digit mainland mobile number with an allocated prefix.
func IsValidChinaPhone(phone string) bool {
	if !cnPhoneRegex.MatchString(phone) {
		return false
	}
	return cnPhonePrefixes[phone[:3]]
}

// Custom Validators

func cnPhoneValidation(fl validator.FieldLevel) bool {
	return IsValidChinaPhone(fl.Field().String())
}

// userStructValidation does struct level validation on NewUser and SetPassword structs.
func userStructValidation(sl validator.StructLevel) {
	switch usr := sl.Current().Interface().(type) {
	case NewUser:
		validatePassword(usr.Password, sl, usr.Phone, usr.Email)
	case SetPassword:
		validatePassword(usr.Password, sl, usr.phone)
	}
}

// validatePassword applies the password policy to provided password:
// - minLen: 6
// - no whitespace
// - no all numeric
// - no user attrs similarity
func validatePassword(pwd string, sl validator.StructLevel, attrs ...string) {
	if pwd == "" {
		return // reported by `required`
	}
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	var digitCount int
	runes := []rune(pwd)

	if len(runes) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}
	for _, char := range runes {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}

	if digitCount == len(runes) {
		reportErr(pwdNotAllNumTag)
		return
	}

	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	for _, attr := range attrs {
		if getRatio(strings.ToLower(pwd), strings.ToLower(attr)) >= pwdMaxSim {
			reportErr(pwdAttrSimTag)
			return
		}
	}
}
