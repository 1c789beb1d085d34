package market

import (
	"fmt"

	"PriceScope/internal/model"
)

// Builtin returns the built-in registry for a platform. The tables cover the
// markets each storefront actually operates in, with the storefront's own
// locale identifiers; they are not interchangeable between platforms.
func Builtin(p model.Platform) (*Registry, error) {
	switch p {
	case model.PlatformSteam:
		return New(p, steamBuiltin)
	case model.PlatformXbox:
		return New(p, xboxBuiltin)
	case model.PlatformPlayStation:
		return New(p, psBuiltin)
	default:
		return nil, fmt.Errorf("no built-in registry for platform %q", p)
	}
}

var steamBuiltin = []model.Market{
	{Code: "US", Locale: "us", Currency: "USD", Name: "United States"},
	{Code: "CA", Locale: "ca", Currency: "CAD", Name: "Canada"},
	{Code: "MX", Locale: "mx", Currency: "MXN", Name: "Mexico"},
	{Code: "BR", Locale: "br", Currency: "BRL", Name: "Brazil"},
	{Code: "AR", Locale: "ar", Currency: "USD", Name: "Argentina"},
	{Code: "CL", Locale: "cl", Currency: "CLP", Name: "Chile"},
	{Code: "CO", Locale: "co", Currency: "COP", Name: "Colombia"},
	{Code: "PE", Locale: "pe", Currency: "PEN", Name: "Peru"},
	{Code: "UY", Locale: "uy", Currency: "UYU", Name: "Uruguay"},
	{Code: "CR", Locale: "cr", Currency: "CRC", Name: "Costa Rica"},
	{Code: "GB", Locale: "gb", Currency: "GBP", Name: "United Kingdom"},
	{Code: "IE", Locale: "ie", Currency: "EUR", Name: "Ireland"},
	{Code: "FR", Locale: "fr", Currency: "EUR", Name: "France"},
	{Code: "DE", Locale: "de", Currency: "EUR", Name: "Germany"},
	{Code: "IT", Locale: "it", Currency: "EUR", Name: "Italy"},
	{Code: "ES", Locale: "es", Currency: "EUR", Name: "Spain"},
	{Code: "PT", Locale: "pt", Currency: "EUR", Name: "Portugal"},
	{Code: "NL", Locale: "nl", Currency: "EUR", Name: "Netherlands"},
	{Code: "BE", Locale: "be", Currency: "EUR", Name: "Belgium"},
	{Code: "AT", Locale: "at", Currency: "EUR", Name: "Austria"},
	{Code: "CH", Locale: "ch", Currency: "CHF", Name: "Switzerland"},
	{Code: "DK", Locale: "dk", Currency: "DKK", Name: "Denmark"},
	{Code: "SE", Locale: "se", Currency: "SEK", Name: "Sweden"},
	{Code: "NO", Locale: "no", Currency: "NOK", Name: "Norway"},
	{Code: "FI", Locale: "fi", Currency: "EUR", Name: "Finland"},
	{Code: "PL", Locale: "pl", Currency: "PLN", Name: "Poland"},
	{Code: "CZ", Locale: "cz", Currency: "CZK", Name: "Czechia"},
	{Code: "SK", Locale: "sk", Currency: "EUR", Name: "Slovakia"},
	{Code: "HU", Locale: "hu", Currency: "HUF", Name: "Hungary"},
	{Code: "GR", Locale: "gr", Currency: "EUR", Name: "Greece"},
	{Code: "TR", Locale: "tr", Currency: "USD", Name: "Turkey"},
	{Code: "IL", Locale: "il", Currency: "ILS", Name: "Israel"},
	{Code: "SA", Locale: "sa", Currency: "SAR", Name: "Saudi Arabia"},
	{Code: "AE", Locale: "ae", Currency: "AED", Name: "United Arab Emirates"},
	{Code: "QA", Locale: "qa", Currency: "QAR", Name: "Qatar"},
	{Code: "KW", Locale: "kw", Currency: "KWD", Name: "Kuwait"},
	{Code: "JP", Locale: "jp", Currency: "JPY", Name: "Japan"},
	{Code: "KR", Locale: "kr", Currency: "KRW", Name: "South Korea"},
	{Code: "TW", Locale: "tw", Currency: "TWD", Name: "Taiwan"},
	{Code: "HK", Locale: "hk", Currency: "HKD", Name: "Hong Kong"},
	{Code: "SG", Locale: "sg", Currency: "SGD", Name: "Singapore"},
	{Code: "MY", Locale: "my", Currency: "MYR", Name: "Malaysia"},
	{Code: "TH", Locale: "th", Currency: "THB", Name: "Thailand"},
	{Code: "ID", Locale: "id", Currency: "IDR", Name: "Indonesia"},
	{Code: "PH", Locale: "ph", Currency: "PHP", Name: "Philippines"},
	{Code: "VN", Locale: "vn", Currency: "VND", Name: "Vietnam"},
	{Code: "IN", Locale: "in", Currency: "INR", Name: "India"},
	{Code: "AU", Locale: "au", Currency: "AUD", Name: "Australia"},
	{Code: "NZ", Locale: "nz", Currency: "NZD", Name: "New Zealand"},
	{Code: "KZ", Locale: "kz", Currency: "KZT", Name: "Kazakhstan"},
	{Code: "UA", Locale: "ua", Currency: "UAH", Name: "Ukraine"},
	{Code: "CN", Locale: "cn", Currency: "CNY", Name: "China"},
	{Code: "ZA", Locale: "za", Currency: "ZAR", Name: "South Africa"},
	{Code: "RU", Locale: "ru", Currency: "RUB", Name: "Russia"},
}

var xboxBuiltin = []model.Market{
	{Code: "US", Locale: "en-us", Currency: "USD", Name: "United States"},
	{Code: "CA", Locale: "en-ca", Currency: "CAD", Name: "Canada"},
	{Code: "MX", Locale: "es-mx", Currency: "MXN", Name: "Mexico"},
	{Code: "BR", Locale: "pt-br", Currency: "BRL", Name: "Brazil"},
	{Code: "AR", Locale: "es-ar", Currency: "ARS", Name: "Argentina"},
	{Code: "CL", Locale: "es-cl", Currency: "CLP", Name: "Chile"},
	{Code: "CO", Locale: "es-co", Currency: "COP", Name: "Colombia"},
	{Code: "PE", Locale: "es-pe", Currency: "PEN", Name: "Peru"},
	{Code: "CR", Locale: "es-cr", Currency: "CRC", Name: "Costa Rica"},
	{Code: "GB", Locale: "en-gb", Currency: "GBP", Name: "United Kingdom"},
	{Code: "IE", Locale: "en-ie", Currency: "EUR", Name: "Ireland"},
	{Code: "FR", Locale: "fr-fr", Currency: "EUR", Name: "France"},
	{Code: "DE", Locale: "de-de", Currency: "EUR", Name: "Germany"},
	{Code: "IT", Locale: "it-it", Currency: "EUR", Name: "Italy"},
	{Code: "ES", Locale: "es-es", Currency: "EUR", Name: "Spain"},
	{Code: "PT", Locale: "pt-pt", Currency: "EUR", Name: "Portugal"},
	{Code: "NL", Locale: "nl-nl", Currency: "EUR", Name: "Netherlands"},
	{Code: "BE", Locale: "fr-fr", Currency: "EUR", Name: "Belgium"},
	{Code: "AT", Locale: "de-at", Currency: "EUR", Name: "Austria"},
	{Code: "CH", Locale: "de-ch", Currency: "CHF", Name: "Switzerland"},
	{Code: "SE", Locale: "sv-se", Currency: "SEK", Name: "Sweden"},
	{Code: "NO", Locale: "nb-no", Currency: "NOK", Name: "Norway"},
	{Code: "FI", Locale: "fi-fi", Currency: "EUR", Name: "Finland"},
	{Code: "PL", Locale: "pl-pl", Currency: "PLN", Name: "Poland"},
	{Code: "CZ", Locale: "cs-cz", Currency: "CZK", Name: "Czechia"},
	{Code: "SK", Locale: "sk-sk", Currency: "EUR", Name: "Slovakia"},
	{Code: "HU", Locale: "hu-hu", Currency: "HUF", Name: "Hungary"},
	{Code: "GR", Locale: "el-gr", Currency: "EUR", Name: "Greece"},
	{Code: "TR", Locale: "tr-tr", Currency: "TRY", Name: "Turkey"},
	{Code: "IL", Locale: "he-il", Currency: "ILS", Name: "Israel"},
	{Code: "SA", Locale: "ar-sa", Currency: "SAR", Name: "Saudi Arabia"},
	{Code: "AE", Locale: "ar-ae", Currency: "AED", Name: "United Arab Emirates"},
	{Code: "QA", Locale: "ar-qa", Currency: "QAR", Name: "Qatar"},
	{Code: "KW", Locale: "ar-kw", Currency: "KWD", Name: "Kuwait"},
	{Code: "JP", Locale: "ja-jp", Currency: "JPY", Name: "Japan"},
	{Code: "KR", Locale: "ko-kr", Currency: "KRW", Name: "South Korea"},
	{Code: "TW", Locale: "zh-tw", Currency: "TWD", Name: "Taiwan"},
	{Code: "HK", Locale: "zh-hk", Currency: "HKD", Name: "Hong Kong"},
	{Code: "SG", Locale: "en-sg", Currency: "SGD", Name: "Singapore"},
	{Code: "MY", Locale: "en-my", Currency: "MYR", Name: "Malaysia"},
	{Code: "TH", Locale: "th-th", Currency: "THB", Name: "Thailand"},
	{Code: "ID", Locale: "id-id", Currency: "IDR", Name: "Indonesia"},
	{Code: "PH", Locale: "en-ph", Currency: "PHP", Name: "Philippines"},
	{Code: "VN", Locale: "vi-vn", Currency: "VND", Name: "Vietnam"},
	{Code: "IN", Locale: "en-in", Currency: "INR", Name: "India"},
	{Code: "AU", Locale: "en-au", Currency: "AUD", Name: "Australia"},
	{Code: "NZ", Locale: "en-nz", Currency: "NZD", Name: "New Zealand"},
	{Code: "ZA", Locale: "en-za", Currency: "ZAR", Name: "South Africa"},
	{Code: "UA", Locale: "uk-ua", Currency: "UAH", Name: "Ukraine"},
	{Code: "KZ", Locale: "kk-kz", Currency: "KZT", Name: "Kazakhstan"},
	{Code: "RU", Locale: "ru-ru", Currency: "RUB", Name: "Russia"},
}

var psBuiltin = []model.Market{
	{Code: "US", Locale: "en-us", Currency: "USD", Name: "United States"},
	{Code: "CA", Locale: "en-ca", Currency: "CAD", Name: "Canada"},
	{Code: "MX", Locale: "es-mx", Currency: "USD", Name: "Mexico"},
	{Code: "BR", Locale: "pt-br", Currency: "BRL", Name: "Brazil"},
	{Code: "AR", Locale: "es-ar", Currency: "USD", Name: "Argentina"},
	{Code: "CL", Locale: "es-cl", Currency: "USD", Name: "Chile"},
	{Code: "CO", Locale: "es-co", Currency: "USD", Name: "Colombia"},
	{Code: "PE", Locale: "es-pe", Currency: "USD", Name: "Peru"},
	{Code: "UY", Locale: "es-uy", Currency: "USD", Name: "Uruguay"},
	{Code: "CR", Locale: "es-cr", Currency: "USD", Name: "Costa Rica"},
	{Code: "GB", Locale: "en-gb", Currency: "GBP", Name: "United Kingdom"},
	{Code: "IE", Locale: "en-ie", Currency: "EUR", Name: "Ireland"},
	{Code: "FR", Locale: "fr-fr", Currency: "EUR", Name: "France"},
	{Code: "DE", Locale: "de-de", Currency: "EUR", Name: "Germany"},
	{Code: "IT", Locale: "it-it", Currency: "EUR", Name: "Italy"},
	{Code: "ES", Locale: "es-es", Currency: "EUR", Name: "Spain"},
	{Code: "PT", Locale: "pt-pt", Currency: "EUR", Name: "Portugal"},
	{Code: "NL", Locale: "nl-nl", Currency: "EUR", Name: "Netherlands"},
	{Code: "BE", Locale: "fr-be", Currency: "EUR", Name: "Belgium"},
	{Code: "AT", Locale: "de-at", Currency: "EUR", Name: "Austria"},
	{Code: "CH", Locale: "de-ch", Currency: "CHF", Name: "Switzerland"},
	{Code: "DK", Locale: "da-dk", Currency: "DKK", Name: "Denmark"},
	{Code: "SE", Locale: "sv-se", Currency: "SEK", Name: "Sweden"},
	{Code: "NO", Locale: "no-no", Currency: "NOK", Name: "Norway"},
	{Code: "FI", Locale: "fi-fi", Currency: "EUR", Name: "Finland"},
	{Code: "PL", Locale: "pl-pl", Currency: "PLN", Name: "Poland"},
	{Code: "CZ", Locale: "cs-cz", Currency: "CZK", Name: "Czechia"},
	{Code: "SK", Locale: "sk-sk", Currency: "EUR", Name: "Slovakia"},
	{Code: "HU", Locale: "hu-hu", Currency: "HUF", Name: "Hungary"},
	{Code: "GR", Locale: "el-gr", Currency: "EUR", Name: "Greece"},
	{Code: "TR", Locale: "tr-tr", Currency: "TRY", Name: "Turkey"},
	{Code: "IL", Locale: "he-il", Currency: "ILS", Name: "Israel"},
	{Code: "SA", Locale: "ar-sa", Currency: "SAR", Name: "Saudi Arabia"},
	{Code: "AE", Locale: "ar-ae", Currency: "AED", Name: "United Arab Emirates"},
	{Code: "JP", Locale: "ja-jp", Currency: "JPY", Name: "Japan"},
	{Code: "KR", Locale: "ko-kr", Currency: "KRW", Name: "South Korea"},
	{Code: "TW", Locale: "zh-tw", Currency: "TWD", Name: "Taiwan"},
	{Code: "HK", Locale: "zh-hk", Currency: "HKD", Name: "Hong Kong"},
	{Code: "SG", Locale: "en-sg", Currency: "SGD", Name: "Singapore"},
	{Code: "MY", Locale: "en-my", Currency: "MYR", Name: "Malaysia"},
	{Code: "TH", Locale: "th-th", Currency: "THB", Name: "Thailand"},
	{Code: "ID", Locale: "id-id", Currency: "IDR", Name: "Indonesia"},
	{Code: "PH", Locale: "en-ph", Currency: "PHP", Name: "Philippines"},
	{Code: "VN", Locale: "vi-vn", Currency: "VND", Name: "Vietnam"},
	{Code: "IN", Locale: "en-in", Currency: "INR", Name: "India"},
	{Code: "AU", Locale: "en-au", Currency: "AUD", Name: "Australia"},
	{Code: "NZ", Locale: "en-nz", Currency: "NZD", Name: "New Zealand"},
	{Code: "ZA", Locale: "en-za", Currency: "ZAR", Name: "South Africa"},
	{Code: "UA", Locale: "uk-ua", Currency: "UAH", Name: "Ukraine"},
}
