// Package landing renders the ChatFlow landing page as a Bubble Tea
// program.
//
// The page is one scrolling document. Every section below the navigation
// bar is bound to its own [section.Binder], so sections fade in
// independently as they scroll into view. The hero embeds the chat
// preview driven by a [preview.Controller].
//
// # Key Bindings
//
//	↑/k ↓/j    - Scroll
//	pgup/pgdn  - Page
//	g/G        - Top/bottom
//	1-4        - Jump to Features, Integrations, Pricing, FAQs
//	[ ] enter  - Move through and toggle FAQ answers
//	r          - Replay the chat preview
//	t          - Cycle color themes
//	m          - Toggle the menu on narrow terminals
//	l / c      - Open /login or /chat
//	esc        - Back to the landing page
//	?          - Show help
//
// All timers run on a [timing.Scheduler]. The default scheduler is a
// [timing.Loop] pumped through Update, so timer callbacks share the
// update goroutine with input handling.
package landing
