package constants

const (
	LocaleEnglish = "en"
	LocaleLatvian = "lv"

	DefaultLocale = LocaleEnglish
)
