// Package sshconfig parses OpenSSH client configuration files into host records.
//
// A config file is read as whole text and split into blocks on blank-line
// runs. Each block is reduced to a set of recognized attributes plus the
// lines that were not recognized, and then classified as exactly one of:
//
//   - a host record (the block has a "Host <pattern>" line)
//   - an include-only fragment (no host, but one or more "Include" lines)
//   - unparseable (neither; silently dropped)
//
// # Recognized Directives
//
// Only Host, HostName, User, IdentityFile and Port are modeled. Keywords are
// matched case-insensitively at the start of a trimmed line and must be
// followed by exactly one value token:
//
//	Host web
//	HostName 10.0.0.5
//	IdentityFile ~/.ssh/id_ed25519
//
// A recognized keyword with zero or several value tokens (for example a
// quoted path containing spaces) is not an attribute; the whole line is kept
// as an optional setting instead. Every other non-comment line is kept
// verbatim, in order, as an optional setting. Comment lines ("#...") are
// dropped.
//
// # Includes
//
// Include lines are followed only in blocks without a Host line:
//
//	Include conf.d/*.conf ~/.ssh/work_config
//
// Each pattern is expanded with shell-style globbing relative to the
// directory of the including file ("~" is expanded to the home directory).
// Matched files are loaded recursively and their records are spliced in at
// the position of the include block.
//
// Unreadable included files, cyclic includes, includes nested deeper than
// [DefaultMaxDepth] and malformed glob patterns never fail a load. They are
// reported in [Result.Skipped] and logged in verbose mode. Only an unreadable
// root file is an error.
package sshconfig
