package entities

// DocumentKind identifies one of the identity documents a renter uploads.
type DocumentKind string

const (
	DocumentAadharFront    DocumentKind = "aadharFrontSide"
	DocumentAadharBack     DocumentKind = "aadharBackSide"
	DocumentDrivingLicense DocumentKind = "drivingLicense"
)

func DocumentKinds() []DocumentKind {
	return []DocumentKind{DocumentAadharFront, DocumentAadharBack, DocumentDrivingLicense}
}

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentAadharFront, DocumentAadharBack, DocumentDrivingLicense:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "PENDING"
	DocumentApproved DocumentStatus = "APPROVED"
	DocumentRejected DocumentStatus = "REJECTED"
)

// IsDecision reports whether a manager can send this status as a verdict.
func (s DocumentStatus) IsDecision() bool {
	return s == DocumentApproved || s == DocumentRejected
}

// DocumentStatuses holds the verification state per document kind.
type DocumentStatuses map[DocumentKind]DocumentStatus

func (d DocumentStatuses) Clone() DocumentStatuses {
	out := make(DocumentStatuses, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
