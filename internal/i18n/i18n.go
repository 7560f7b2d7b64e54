// Package i18n provides internationalization support for the quantity service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "fa-IR,fa;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "fa" from "fa-IR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.not_found":            "Not found",
			"error.product_not_found":    "Product parameters not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.timeout":              "Request timeout",
			"error.service_unavailable":  "Service temporarily unavailable",

			// Calculation errors
			"error.calc.missing_parameter": "A required product parameter is missing",
			"error.calc.invalid_input":     "A measurement or parameter value is invalid",
			"error.calc.unsupported_mode":  "The requested calculation mode is not supported",
			"error.calc.division_by_zero":  "A product parameter used as a divisor is zero",

			// Success messages
			"success.quantity_calculated": "Quantity calculation completed successfully",
			"success.parameters_saved":    "Product parameters saved successfully",
		},
		"fa": {
			// Error messages
			"error.invalid_request":      "درخواست نامعتبر است",
			"error.invalid_request_body": "بدنه درخواست نامعتبر است",
			"error.internal_error":       "خطای غیرمنتظره‌ای رخ داد",
			"error.not_found":            "یافت نشد",
			"error.product_not_found":    "پارامترهای محصول یافت نشد",
			"error.rate_limit_exceeded":  "تعداد درخواست‌ها زیاد است، بعداً دوباره تلاش کنید",
			"error.timeout":              "مهلت درخواست به پایان رسید",
			"error.service_unavailable":  "سرویس موقتاً در دسترس نیست",

			// Calculation errors
			"error.calc.missing_parameter": "یکی از پارامترهای ضروری محصول موجود نیست",
			"error.calc.invalid_input":     "مقدار اندازه‌گیری یا پارامتر نامعتبر است",
			"error.calc.unsupported_mode":  "حالت محاسبه درخواستی پشتیبانی نمی‌شود",
			"error.calc.division_by_zero":  "پارامتر محصول مورد استفاده به عنوان مقسوم‌علیه صفر است",

			// Success messages
			"success.quantity_calculated": "محاسبه مقدار با موفقیت انجام شد",
			"success.parameters_saved":    "پارامترهای محصول با موفقیت ذخیره شد",
		},
	}
}
