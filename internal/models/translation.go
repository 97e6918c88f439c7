package models

type DeepLResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseDetails string  `json:"responseDetails"`
	} `json:"responseData"`
	// MyMemory sends the status as a number on success and as a string on
	// some errors, so it is decoded loosely.
	ResponseStatus any `json:"responseStatus"`
}
