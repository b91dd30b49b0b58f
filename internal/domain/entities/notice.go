package entities

import "time"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a transient message for the dashboard (a toast).
type Notice struct {
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
	BookingID int64       `json:"booking_id,omitempty"`
	At        time.Time   `json:"at"`
}

func SuccessNotice(bookingID int64, msg string) Notice {
	return Notice{Level: NoticeSuccess, Message: msg, BookingID: bookingID, At: time.Now().UTC()}
}

func ErrorNotice(bookingID int64, msg string) Notice {
	return Notice{Level: NoticeError, Message: msg, BookingID: bookingID, At: time.Now().UTC()}
}
