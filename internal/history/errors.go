package history

import "errors"

// ErrCorruptRecord marks a durable history file whose contents cannot be
// parsed. Callers distinguish this from "no history yet".
var ErrCorruptRecord = errors.New("history record is malformed")
