package entities

// User is the renter profile as returned by /users/{id}.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	IsVerified  bool   `json:"isVerified"`

	AadharFrontStatus    DocumentStatus `json:"aadharFrontStatus,omitempty"`
	AadharBackStatus     DocumentStatus `json:"aadharBackStatus,omitempty"`
	DrivingLicenseStatus DocumentStatus `json:"drivingLicenseStatus,omitempty"`

	// Base64 images or data URIs.
	AadharFrontSide string `json:"aadharFrontSide,omitempty"`
	AadharBackSide  string `json:"aadharBackSide,omitempty"`
	DrivingLicense  string `json:"drivingLicense,omitempty"`
}

// DocumentStatuses seeds the per-kind verification state, PENDING when unset.
func (u User) DocumentStatuses() DocumentStatuses {
	return DocumentStatuses{
		DocumentAadharFront:    orPending(u.AadharFrontStatus),
		DocumentAadharBack:     orPending(u.AadharBackStatus),
		DocumentDrivingLicense: orPending(u.DrivingLicenseStatus),
	}
}

// DocumentImage returns the stored image for a document kind.
func (u User) DocumentImage(kind DocumentKind) string {
	switch kind {
	case DocumentAadharFront:
		return u.AadharFrontSide
	case DocumentAadharBack:
		return u.AadharBackSide
	case DocumentDrivingLicense:
		return u.DrivingLicense
	}
	return ""
}

func orPending(s DocumentStatus) DocumentStatus {
	if s == "" {
		return DocumentPending
	}
	return s
}
