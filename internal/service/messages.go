package service

import (
	"fmt"
	"strings"

	"github.com/DanRulev/vokabot/internal/models"
)

const (
	msgHelp = "Willkommen beim Vokabeltrainer! Befehle:\n" +
		"/add <Englisches Wort> - Neue Vokabel interaktiv hinzufügen\n" +
		"/train [ANZAHL] - Training starten\n" +
		"/cancel - Training abbrechen\n" +
		"/list - Alle Vokabeln anzeigen\n" +
		"/search <Wort> - Nach einer Vokabel suchen\n" +
		"/stats - Deine Trainingsstatistik"

	msgAddUsage         = "Bitte gib ein englisches Wort an: /add <Englisches Wort>"
	msgAddNoWord        = "Fehler: Es wurde kein englisches Wort gefunden. Bitte starte erneut mit /add."
	msgAddEmptyReply    = "Bitte gib eine deutsche Übersetzung ein oder bestätige mit ✅."
	msgTrainUsage       = "Bitte gib eine gültige Anzahl von Fragen ein: /train [ANZAHL]"
	msgNoVocab          = "Es sind keine Vokabeln gespeichert. Füge zuerst welche hinzu!"
	msgCorrect          = "Richtig!"
	msgCancelled        = "Training abgebrochen."
	msgNothingToAbort   = "Kein aktives Training zum Abbrechen."
	msgNothingToConfirm = "Es gibt keine Vokabel zum Bestätigen."
	msgNotUnderstood    = "Ich bin mir nicht sicher, was du meinst. Verwende /start für Hilfe."
	msgSearchUsage      = "Bitte gib ein Wort zum Suchen ein: /search <Wort>"
	msgListEmpty        = "Es sind keine Vokabeln gespeichert."
	msgSearchEmpty      = "Keine Vokabeln gefunden."
	msgStatsEmpty       = "Du hast noch kein Training abgeschlossen. Starte eins mit /train."

	// TranslationFailed is offered as suggestion when the gateway fails.
	TranslationFailed = "(Übersetzung fehlgeschlagen)"
)

// affirmations confirm the suggested translation. Compared lower-cased.
var affirmations = map[string]struct{}{
	"✅":         {},
	"ja":        {},
	"ok":        {},
	"passt":     {},
	"bestätige": {},
	"👍":         {},
	"✔️":        {},
}

func isAffirmation(reply string) bool {
	_, ok := affirmations[strings.ToLower(strings.TrimSpace(reply))]
	return ok
}

func addPrompt(english, suggestion string) string {
	return fmt.Sprintf("Englisches Wort: '%s' gespeichert.\n"+
		"Vorgeschlagene Übersetzung: %s\n"+
		"✅ = übernehmen, oder eigene deutsche Übersetzung eingeben.", english, suggestion)
}

func addedMessage(english, german string) string {
	return fmt.Sprintf("Vokabel hinzugefügt: %s - %s", english, german)
}

func questionMessage(q models.Question) string {
	if q.Direction == models.AskEnglish {
		return fmt.Sprintf("Was ist die deutsche Übersetzung von: %s?", q.Prompt())
	}
	return fmt.Sprintf("Was ist die englische Übersetzung von: %s?", q.Prompt())
}

func wrongMessage(answer string) string {
	return "Falsch! Die richtige Antwort ist: " + answer
}

func summaryMessage(correct, total int) string {
	return fmt.Sprintf("Training beendet! Du hast %d von %d richtig!", correct, total)
}
