// Package services implements the driving ports: the compliance review
// pipeline, checklist verification, and oracle response parsing.
//
// Services orchestrate the algorithm packages (docx, retrieval, locate)
// and the driven ports (corpus store, oracle, report store). They hold no
// mutable state beyond injected collaborators; every review run is
// self-contained.
package services
