package dbconn

import (
	"fmt"
	"strconv"

	"github.com/amp-labs/amp-witness/redact"
	"github.com/amp-labs/amp-witness/witness"
)

// Mask replaces the password in the Secure witnesses.
const Mask = "******"

var (
	// Compact renders an Info on one line. Fields are quoted, not escaped.
	Compact = witness.NewDescribing(func(i Info) string { //nolint:gochecknoglobals
		return fmt.Sprintf(`DBConnectionInfo(database: "%s", hostname: "%s", password: "%s", port: "%d", user: "%s")`,
			i.Database, i.Hostname, i.Password, i.Port, i.User)
	})

	// Pretty renders an Info over several lines.
	Pretty = witness.NewDescribing(func(i Info) string { //nolint:gochecknoglobals
		return fmt.Sprintf("DBConnectionInfo(\n"+
			"  database: \"%s\",\n"+
			"  hostname: \"%s\",\n"+
			"  password: \"%s\",\n"+
			"  port: \"%d\",\n"+
			"  user: \"%s\"\n"+
			")", i.Database, i.Hostname, i.Password, i.Port, i.User)
	})

	// Connection renders an Info as a connection URL.
	Connection = witness.NewDescribing(func(i Info) string { //nolint:gochecknoglobals
		return "database://" + i.User + ":" + i.Password + "@" +
			i.Hostname + ":" + strconv.Itoa(i.Port) + "/" + i.Database
	})

	// YAML renders an Info as a YAML document, password included.
	YAML = witness.YAML[Info]() //nolint:gochecknoglobals

	// SecureCompact is Compact with the password masked.
	SecureCompact = Redacted(Compact, Mask) //nolint:gochecknoglobals

	// SecurePretty is Pretty with the password masked.
	SecurePretty = Redacted(Pretty, Mask) //nolint:gochecknoglobals

	// SecureConnection is Connection with the password masked.
	SecureConnection = Redacted(Connection, Mask) //nolint:gochecknoglobals

	// HiddenConnection is Connection with the password replaced by
	// redact.Redacted.
	HiddenConnection = RedactedWith(Connection, redact.ActionRedactFully, 0) //nolint:gochecknoglobals
)

// Redacted derives a witness that shows mask in place of the password.
// Neither d nor the described Info is changed.
func Redacted(d witness.Describing[Info], mask string) witness.Describing[Info] {
	return witness.Contramap(d, func(i Info) Info {
		return i.WithPassword(mask)
	})
}

// RedactedWith derives a witness that runs the password through
// redact.Apply with action before delegating to d.
func RedactedWith(d witness.Describing[Info], action redact.Action, partialLength int) witness.Describing[Info] {
	return witness.Contramap(d, func(i Info) Info {
		return i.WithPassword(redact.Apply(action, i.Password, partialLength))
	})
}

// PartiallyRedacted derives a witness that keeps the first visible runes of
// the password and stars out the rest.
func PartiallyRedacted(d witness.Describing[Info], visible int) witness.Describing[Info] {
	return RedactedWith(d, redact.ActionRedactPartialWithMask, visible)
}
