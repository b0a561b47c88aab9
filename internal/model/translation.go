// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package model

// Translation holds every localized string the landing page renders.
// Non-default locales may leave fields empty, the i18n resolver fills
// the gaps from the default locale before rendering.
type Translation struct {
	Language   string                `json:"language" form:"language"`
	FlagImgSrc string                `json:"flag_img_src" form:"flag_img_src"`
	Navigation TranslationNavigation `json:"navigation" form:"navigation"`
	Hero       TranslationHero       `json:"hero" form:"hero"`
	Pricing    TranslationPricing    `json:"pricing" form:"pricing"`
	Contact    TranslationContact    `json:"contact" form:"contact"`
	Waitlist   TranslationWaitlist   `json:"waitlist" form:"waitlist"`
	Newsletter TranslationNewsletter `json:"newsletter" form:"newsletter"`
	Footer     TranslationFooter     `json:"footer" form:"footer"`
	Error      TranslationError      `json:"error" form:"error"`
	Success    TranslationSuccess    `json:"success" form:"success"`
}

type TranslationNavigation struct {
	About      string `json:"about" form:"about"`
	HowItWorks string `json:"how_it_works" form:"how_it_works"`
	Pricing    string `json:"pricing" form:"pricing"`
	Contact    string `json:"contact" form:"contact"`
}

type TranslationHero struct {
	Title        string `json:"title" form:"title"`
	Subtitle     string `json:"subtitle" form:"subtitle"`
	CTAPrimary   string `json:"cta_primary" form:"cta_primary"`
	CTASecondary string `json:"cta_secondary" form:"cta_secondary"`
}

type TranslationPricing struct {
	Title                   string `json:"title" form:"title"`
	Subtitle                string `json:"subtitle" form:"subtitle"`
	LabelTeamSize           string `json:"label_team_size" form:"label_team_size"`
	LabelCriteria           string `json:"label_criteria" form:"label_criteria"`
	LabelBasePackage        string `json:"label_base_package" form:"label_base_package"`
	LabelAdditionalPeople   string `json:"label_additional_people" form:"label_additional_people"`
	LabelAdditionalCriteria string `json:"label_additional_criteria" form:"label_additional_criteria"`
	LabelTotal              string `json:"label_total" form:"label_total"`
	ButtonCheckout          string `json:"button_checkout" form:"button_checkout"`
}

type TranslationContact struct {
	Title              string `json:"title" form:"title"`
	LabelInputName     string `json:"label_input_name" form:"label_input_name"`
	LabelInputEmail    string `json:"label_input_email" form:"label_input_email"`
	LabelInputCompany  string `json:"label_input_company" form:"label_input_company"`
	LabelInputMessage  string `json:"label_input_message" form:"label_input_message"`
	PlaceholderName    string `json:"placeholder_name" form:"placeholder_name"`
	PlaceholderEmail   string `json:"placeholder_email" form:"placeholder_email"`
	PlaceholderMessage string `json:"placeholder_message" form:"placeholder_message"`
	ButtonSubmit       string `json:"button_submit" form:"button_submit"`
	MessageSuccess     string `json:"message_success" form:"message_success"`
}

type TranslationWaitlist struct {
	Title            string `json:"title" form:"title"`
	PlaceholderEmail string `json:"placeholder_email" form:"placeholder_email"`
	ButtonJoin       string `json:"button_join" form:"button_join"`
	MessageSuccess   string `json:"message_success" form:"message_success"`
}

type TranslationNewsletter struct {
	Title            string `json:"title" form:"title"`
	PlaceholderEmail string `json:"placeholder_email" form:"placeholder_email"`
	ButtonSubscribe  string `json:"button_subscribe" form:"button_subscribe"`
	MessageSuccess   string `json:"message_success" form:"message_success"`
}

type TranslationFooter struct {
	Tagline string `json:"tagline" form:"tagline"`
	Imprint string `json:"imprint" form:"imprint"`
	Privacy string `json:"privacy" form:"privacy"`
}

type TranslationError struct {
	Title      string `json:"title" form:"title"`
	Validation string `json:"validation" form:"validation"`
	Process    string `json:"process" form:"process"`
}

type TranslationSuccess struct {
	Title string `json:"title" form:"title"`
}

type LanguageOption struct {
	Lang       string `json:"lang" form:"lang"`
	Name       string `json:"name" form:"name"`
	FlagImgSrc string `json:"flagImgSrc" form:"flagImgSrc"`
}
