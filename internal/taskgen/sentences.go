package taskgen

import "deutschprofi_backend/internal/domain"

// Пул примеров предложений по уровням сложности
var sampleSentences = map[domain.Difficulty][]string{
	domain.DifficultyEasy: {
		"Der große Hund läuft schnell.",
		"Die schöne Blume blüht im Garten.",
		"Ein kleiner Vogel singt laut.",
		"Das alte Buch liegt auf dem Tisch.",
		"Meine liebe Mutter kocht gerne.",
		"Der kleine Junge spielt gerne Fußball.",
		"Die rote Rose duftet wunderbar.",
		"Ein großer Baum steht im Park.",
		"Das neue Auto fährt sehr schnell.",
		"Der alte Mann liest ein Buch.",
		"Die junge Frau singt schön.",
		"Ein kleiner Hund bellt laut.",
		"Das große Haus hat viele Zimmer.",
	},
	domain.DifficultyMedium: {
		"Gestern ging ich mit meinem Freund ins Kino.",
		"Die kluge Lehrerin erklärt den Schülern die Mathematik.",
		"Obwohl es regnet, spielen die Kinder draußen.",
		"Das neue Auto fährt sehr schnell und sicher.",
		"Wenn du kommst, können wir zusammen lernen.",
		"Gestern Abend ging ich mit meinen Freunden ins Theater.",
		"Die erfahrene Lehrerin erklärt den Schülern die schwierige Aufgabe.",
		"Die kluge Studentin lernt fleißig für ihre wichtige Prüfung.",
		"Trotz des schlechten Wetters entschied sich die Familie für einen Spaziergang.",
		"Das interessante Buch liegt auf dem großen Tisch in der Bibliothek.",
		"Meine liebe Großmutter backt gerne leckere Kekse für ihre Enkelkinder.",
	},
	domain.DifficultyHard: {
		"Trotz des schlechten Wetters entschied sich der mutige Bergsteiger, den Gipfel zu erklimmen.",
		"Während die anderen Schüler bereits nach Hause gegangen waren, blieb der fleißige Student noch in der Bibliothek.",
		"Obwohl er sich sehr angestrengt hatte, konnte er die schwierige Prüfung nicht bestehen.",
		"Die erfahrene Ärztin untersuchte den Patienten gründlich und stellte eine seltene Diagnose.",
		"Nachdem er jahrelang im Ausland gelebt hatte, kehrte er in seine Heimatstadt zurück.",
		"Die kluge Lehrerin erklärte den aufmerksamen Schülern geduldig die komplizierte Mathematikaufgabe.",
		"Obwohl das Wetter sehr schlecht war, entschied sich die mutige Familie für einen spontanen Ausflug in die Berge.",
		"Das interessante, aber schwierige Buch liegt auf dem großen, alten Tisch in der ruhigen Bibliothek.",
	},
}
