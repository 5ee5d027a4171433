package domain

// OnboardingCase read-only view of a merchant onboarding case owned by the onboarding service.
// Only the training preferences are consumed here.
type OnboardingCase struct {
	ID                 int64
	MerchantName       string
	TrainingMode       TrainingMode
	PreferredLocation  string
	PreferredLanguages []Language
}

// WithPreferences fills the request fields the caller left empty from the case preferences.
// Fields the caller supplied are kept as is.
func (c *OnboardingCase) WithPreferences(req SlotRequest) SlotRequest {
	if req.Mode == "" {
		req.Mode = c.TrainingMode
	}
	if req.Location == "" && req.Mode == TrainingModeOnsite {
		req.Location = c.PreferredLocation
	}
	if len(req.Languages) == 0 && len(c.PreferredLanguages) > 0 {
		req.Languages = append([]Language(nil), c.PreferredLanguages...)
	}
	return req
}
