// Package config loads logger settings from YAML or JSON documents.
//
// It is a construction-time collaborator only: it parses a file once,
// maps it onto the logger construction API, and hands the resulting
// Settings to the caller. The pipeline itself never reads files or the
// environment.
//
// Document shape:
//
//	logging:
//	  enabled: true
//	  buffer_size: 64
//	  output: file        # file | console | auto
//	  file:
//	    path: ./logs
//	    capacity: 10
//	    max_size_kb: 2000
//	    filename: app
//	    extension: log
//	  format:
//	    splitter: "::"
//	    template: "{timestamp:-6:30:right}{splitter}{modules:_:_:left}{splitter}{message}"
//	    timestamp: "2006-01-02 15:04:05.000000000"
//
// Missing fields take the same defaults as the construction API. An
// unknown output mode or an invalid format template fails the load:
// template errors are a startup-time contract violation, not something
// to discover at runtime.
package config
