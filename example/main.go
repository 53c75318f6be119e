// Demo for the rotating file pipeline: two producers log concurrently
// for a few seconds against a deliberately tiny 1 KB file ceiling, so
// ./logs fills with rotated files while it runs.
package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/rotolog/rotolog/formatter"
	"github.com/rotolog/rotolog/logger"
)

func main() {
	f, err := formatter.New("::",
		"{timestamp:-6:30:right}{splitter}{modules:_:_:left}{splitter}{message}",
		formatter.DefaultTimestampLayout)
	if err != nil {
		fmt.Println("bad format template:", err)
		return
	}

	output := logger.FileOutput("./logs", 10, logger.FileSizeFromKilobytes(1), "rotolog", "log")
	settings := logger.NewSettings(true, 5, output, f)

	log := logger.New(settings)
	handle := log.Start()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			log.Log([]string{"MAIN", "PRODUCER-1"}, fmt.Sprintf("tick %d from the first producer", i))
			time.Sleep(50 * time.Millisecond)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			// The ambient entry point reaches the same worker.
			logger.Log([]string{"MAIN", "PRODUCER-2"}, fmt.Sprintf("tick %d from the second producer", i))
			time.Sleep(75 * time.Millisecond)
		}
	}()

	wg.Wait()
	handle.Close()
	fmt.Println("done, see ./logs")
}
