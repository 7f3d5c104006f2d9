package uci

import "github.com/op/go-logging"

var log = logging.MustGetLogger("uci")
