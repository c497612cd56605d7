package server

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// dashboardPage is the single HTML shell; the widgets hydrate
// themselves from the JSON API.
func dashboardPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Daily Focus Hub</title>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body>
<header class="topbar">
  <h1>Daily Focus Hub</h1>
  <div id="streak" class="streak"></div>
</header>
<main class="grid">
  <section id="tasks" class="card card-wide">
    <h2>Today's Plan</h2>
    <form id="task-form">
      <input id="task-title" placeholder="What needs doing?" required>
      <input id="task-start" type="time" required>
      <input id="task-end" type="time" required>
      <select id="task-category"></select>
      <button type="submit">Add</button>
    </form>
    <ul id="task-list"></ul>
  </section>
  <section id="chat" class="card card-tall">
    <h2>Tutor</h2>
    <div id="chat-log"></div>
    <form id="chat-form">
      <input id="chat-input" placeholder="Ask anything...">
      <button type="submit">Send</button>
      <button type="button" id="chat-stop" hidden>Stop</button>
    </form>
  </section>
  <section id="habits" class="card">
    <h2>Habits</h2>
    <form id="habit-form">
      <input id="habit-name" placeholder="Add a new habit...">
      <button type="submit">Add</button>
    </form>
    <ul id="habit-list"></ul>
  </section>
  <section id="pet" class="card"><h2>Companion</h2><div id="pet-view"></div></section>
  <section id="mood" class="card"><h2>How are you feeling?</h2><div id="mood-view"></div></section>
  <section id="weather" class="card"><h2>Weather</h2><div id="weather-view"></div></section>
  <section id="quote" class="card"><h2>Quote of the Day</h2><div id="quote-view"></div></section>
  <section id="notes" class="card"><h2>Quick Notes</h2>
    <textarea id="notes-text" placeholder="Jot down quick thoughts, reminders, or ideas..."></textarea>
    <span id="notes-status"></span>
  </section>
</main>
<script src="/static/js/app.js"></script>
</body>
</html>
`)
		return err
	})
}
