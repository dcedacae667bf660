//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// NoticeKind represents the severity of a message shown in the UI
// ENUM(success,info,warning,error)
type NoticeKind string
