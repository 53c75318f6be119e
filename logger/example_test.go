package logger_test

import (
	"github.com/rotolog/rotolog/formatter"
	"github.com/rotolog/rotolog/logger"
)

func Example() {
	f := formatter.MustNew("::",
		"{timestamp:-6:30:right}{splitter}{modules:_:_:left}{splitter}{message}",
		"2006-01-02 15:04:05.000000000")

	output := logger.FileOutput("./logs", 10, logger.FileSizeFromMegabytes(5), "app", "log")
	settings := logger.NewSettings(true, 5, output, f)

	log := logger.New(settings)
	handle := log.Start()

	log.Log([]string{"MAIN"}, "starting up")
	log.Log([]string{"MAIN", "WORKER"}, "processing job 1")

	handle.Close()
}
