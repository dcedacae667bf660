//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// TLSPolicy controls how the SMTP session is upgraded with STARTTLS
// ENUM(mandatory,opportunistic,none)
type TLSPolicy string
