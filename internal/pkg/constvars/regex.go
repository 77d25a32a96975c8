package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexContainAtLeastOneLowercase   = `.*[a-z].*`
	RegexContainAtLeastOneDigit       = `.*\d.*`
	RegexEmail                        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexTimeHHMM                     = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexPhoneNumberGeneral           = `^\+?[1-9]\d{6,14}$`
)
