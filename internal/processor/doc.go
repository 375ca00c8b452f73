// Package processor contains the application logic behind the command line.
// It spells out texts from arguments, standard input or batch files, keeps
// the results for Anki export and launches the GUI. It coordinates the
// phonetic, batch, anki and gui packages.
package processor
