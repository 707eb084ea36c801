package command

import (
	"sort"
	"strings"
)

// Usage strings shown with format errors and by man.
const (
	AddUsage = WordAdd + ": Adds a person to the address book.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + WordAdd + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"

	EditUsage = WordEdit + ": Edits the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] " +
		"([t/TAG]... | [at/TAG]... | [dt/TAG]...)\n" +
		"Example: " + WordEdit + " 1 p/91234567 e/johndoe@example.com"

	DeleteUsage = WordDelete + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDelete + " 1"

	ListUsage = WordList + ": Lists all persons, or the persons carrying every given tag. " +
		"sf/ saves the tags as a folder, df/ deletes the folder for them.\n" +
		"Parameters: [t/TAG]... [sf/ | df/]\n" +
		"Example: " + WordList + " t/friends t/colleagues sf/"

	FindUsage = WordFind + ": Finds all persons whose names contain any of the specified keywords " +
		"(case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFind + " alice bob charlie"

	ClearUsage = WordClear + ": Removes every person from the address book."

	StatsUsage = WordStats + ": Shows person counts per folder and business feature."

	BizUsage = WordBiz + ": Declares a business feature and the tags that mark a person as having it. " +
		"Declaring an existing feature replaces its tags.\n" +
		"Parameters: f/FEATURE [t/TAG]...\n" +
		"Example: " + WordBiz + " f/supplier t/vendor t/wholesale"

	UnbizUsage = WordUnbiz + ": Removes the given business features, or every feature when none is given.\n" +
		"Parameters: [f/FEATURE]...\n" +
		"Example: " + WordUnbiz + " f/supplier"

	UndoUsage = WordUndo + ": Reverts the last change to the address book."

	RedoUsage = WordRedo + ": Re-applies the last undone change."

	HelpUsage = WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp

	ManUsage = WordMan + ": Shows the manual for a command, or lists every command.\n" +
		"Parameters: [COMMAND]\n" +
		"Example: " + WordMan + " " + WordEdit

	ExitUsage = WordExit + ": Exits the program."
)

var manual = map[string]string{
	WordAdd:    AddUsage,
	WordEdit:   EditUsage,
	WordDelete: DeleteUsage,
	WordList:   ListUsage,
	WordFind:   FindUsage,
	WordClear:  ClearUsage,
	WordStats:  StatsUsage,
	WordBiz:    BizUsage,
	WordUnbiz:  UnbizUsage,
	WordUndo:   UndoUsage,
	WordRedo:   RedoUsage,
	WordHelp:   HelpUsage,
	WordMan:    ManUsage,
	WordExit:   ExitUsage,
}

// ManualEntry describes one command.
type ManualEntry struct {
	Word  string
	Usage string
}

// Summary returns the first line of the usage text.
func (e ManualEntry) Summary() string {
	line, _, _ := strings.Cut(e.Usage, "\n")
	return line
}

// Manual returns every command's entry sorted by command word.
func Manual() []ManualEntry {
	entries := make([]ManualEntry, 0, len(manual))
	for word, usage := range manual {
		entries = append(entries, ManualEntry{Word: word, Usage: usage})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Lookup returns the usage for a command word.
func Lookup(word string) (string, bool) {
	usage, ok := manual[word]
	return usage, ok
}

// IsCommandWord reports whether word names a command.
func IsCommandWord(word string) bool {
	_, ok := manual[word]
	return ok
}
