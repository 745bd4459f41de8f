package fotocard

import (
	"errors"

	"github.com/eringen/fotocard/compose"
)

var (
	// ErrUnsupportedFormat is returned for uploads outside AcceptedTypes.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrTooLarge is returned for uploads over Config.MaxUploadSize.
	ErrTooLarge = errors.New("image too large")
	// ErrDecode is returned when an accepted upload cannot be decoded.
	ErrDecode = errors.New("image could not be decoded")
	// ErrRateLimited is returned when an IP uploads too often.
	ErrRateLimited = errors.New("too many uploads")
	// ErrExportBusy is returned when a draft is already being exported.
	ErrExportBusy = errors.New("export already in progress")
)

// User-facing messages.
const (
	msgUnsupported = "শুধুমাত্র JPG, PNG, GIF, BMP, WebP ফরম্যাট সাপোর্ট করবে"
	msgTooLarge    = "ছবির আকার ১০ মেগাবাইটের বেশি হতে পারবে না"
	msgTooManyPx   = "ছবির রেজোলিউশন অনেক বেশি, ছোট একটি ছবি বেছে নিন"
	msgDecode      = "ছবিটি খোলা যায়নি, অন্য একটি ছবি বেছে নিন"
	msgRateLimited = "অনেকবার চেষ্টা করা হয়েছে, এক মিনিট পর আবার চেষ্টা করুন"
	msgExportBusy  = "ডাউনলোড তৈরি হচ্ছে, একটু অপেক্ষা করুন"
	msgNoPhoto     = "আগে একটি ছবি বেছে নিন"
	msgGeneric     = "কিছু একটা সমস্যা হয়েছে, আবার চেষ্টা করুন"

	// IOSSaveHint is shown with the card on devices that block downloads.
	IOSSaveHint = "iPhone/iPad-এ ডাউনলোড করতে, নতুন ট্যাবে খুলে ছবির উপর ট্যাপ করে ধরে রাখুন এবং 'Save Image' বেছে নিন।"
)

// UserMessage maps an error to the Bangla message shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return msgUnsupported
	case errors.Is(err, ErrTooLarge):
		return msgTooLarge
	case errors.Is(err, compose.ErrTooManyPixels):
		return msgTooManyPx
	case errors.Is(err, ErrDecode):
		return msgDecode
	case errors.Is(err, ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, ErrExportBusy):
		return msgExportBusy
	case errors.Is(err, compose.ErrNoPhoto):
		return msgNoPhoto
	default:
		return msgGeneric
	}
}
