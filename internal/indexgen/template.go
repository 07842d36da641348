package indexgen

// indexTemplate is the landing page. The visual design belongs to the site,
// not this tool; keep edits in sync with the page styles used elsewhere.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>DevToolbox - Practical Developer Tools, Guides, and Cheat Sheets</title>
    <meta name="description" content="Collection of practical developer tools, implementation guides, and cheat sheets. Fast to scan, actionable in production.">
    <meta property="og:title" content="DevToolbox">
    <meta property="og:description" content="Practical developer tools, guides, and cheat sheets.">
    <meta property="og:type" content="website">
    <meta name="twitter:card" content="summary">
    <meta name="theme-color" content="#0f172a">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Space+Grotesk:wght@500;700&family=IBM+Plex+Mono:wght@400;500&display=swap" rel="stylesheet">
    <style>
        :root {
            --bg-0: #0b1021;
            --bg-1: #151b35;
            --ink: #f5f7ff;
            --muted: #b8c2e6;
            --card: rgba(14, 20, 41, 0.72);
            --line: rgba(255, 255, 255, 0.12);
            --accent: #50e3c2;
            --accent-2: #ffd166;
            --shadow: 0 16px 40px rgba(0, 0, 0, 0.25);
        }
        * { box-sizing: border-box; }
        body {
            margin: 0;
            min-height: 100vh;
            color: var(--ink);
            background:
                radial-gradient(circle at 15% 15%, rgba(80, 227, 194, 0.24), transparent 32%),
                radial-gradient(circle at 85% 0%, rgba(255, 209, 102, 0.18), transparent 30%),
                linear-gradient(160deg, var(--bg-0), var(--bg-1));
            font-family: "Space Grotesk", "Segoe UI", sans-serif;
            line-height: 1.5;
        }
        .shell { max-width: 1100px; margin: 0 auto; padding: 32px 20px 56px; }
        .hero {
            border: 1px solid var(--line);
            background: linear-gradient(135deg, rgba(20, 28, 57, 0.92), rgba(10, 15, 35, 0.92));
            border-radius: 18px;
            box-shadow: var(--shadow);
            padding: 28px;
            margin-bottom: 20px;
        }
        .hero h1 { margin: 0 0 10px; font-size: clamp(2rem, 4vw, 2.8rem); letter-spacing: -0.02em; }
        .hero p { margin: 0; max-width: 70ch; color: var(--muted); }
        .stats {
            margin-top: 14px;
            font-family: "IBM Plex Mono", monospace;
            color: #dbe4ff;
            font-size: 0.92rem;
            display: flex;
            flex-wrap: wrap;
            gap: 12px;
        }
        .toolbar { margin: 22px 0 18px; }
        .toolbar input {
            width: 100%;
            border: 1px solid var(--line);
            background: var(--card);
            color: var(--ink);
            border-radius: 12px;
            font: inherit;
            padding: 14px 16px;
            font-size: 1rem;
        }
        .toolbar input:focus { outline: 2px solid var(--accent); outline-offset: 2px; }
        .resource-section { margin-top: 20px; }
        .section-header {
            display: flex;
            justify-content: space-between;
            gap: 12px;
            align-items: baseline;
            margin: 0 2px 10px;
        }
        .section-header h2 { margin: 0; font-size: 1.32rem; }
        .section-count { color: var(--muted); font-size: 0.9rem; font-family: "IBM Plex Mono", monospace; }
        .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 14px; }
        .resource-card {
            display: block;
            border: 1px solid var(--line);
            border-radius: 14px;
            padding: 14px;
            background: var(--card);
            text-decoration: none;
            color: inherit;
            transition: transform 140ms ease, border-color 140ms ease, background-color 140ms ease;
        }
        .resource-card:hover {
            transform: translateY(-2px);
            border-color: rgba(80, 227, 194, 0.6);
            background: rgba(19, 28, 56, 0.88);
        }
        .resource-card h3 { margin: 8px 0; font-size: 1.02rem; line-height: 1.4; }
        .resource-card p { margin: 0 0 10px; color: var(--muted); font-size: 0.92rem; }
        .resource-card code {
            display: inline-block;
            border: 1px solid var(--line);
            border-radius: 8px;
            padding: 3px 7px;
            font-family: "IBM Plex Mono", monospace;
            font-size: 0.8rem;
            color: #dae6ff;
        }
        .resource-type {
            display: inline-block;
            font-family: "IBM Plex Mono", monospace;
            font-size: 0.76rem;
            text-transform: uppercase;
            letter-spacing: 0.06em;
            color: #061225;
            background: linear-gradient(130deg, var(--accent), var(--accent-2));
            padding: 3px 7px;
            border-radius: 999px;
        }
        .hidden { display: none !important; }
        footer { margin-top: 30px; color: var(--muted); font-size: 0.86rem; text-align: center; }
        @media (max-width: 640px) {
            .hero { padding: 22px; }
            .stats { gap: 8px; }
        }
    </style>
</head>
<body>
    <main class="shell">
        <header class="hero">
            <h1>DevToolbox</h1>
            <p>Direct, production-focused references for developers. Browse tools, cheat sheets, and deep guides without noise.</p>
            <div class="stats">
                <span>{{.Total}} resources indexed</span>
                <span>Generated from repo metadata</span>
                <span>{{.GeneratedAt}}</span>
            </div>
        </header>
        <div class="toolbar">
            <label for="search" class="hidden">Search resources</label>
            <input id="search" type="search" placeholder="Search by topic, stack, or filename...">
        </div>
        {{range .Sections}}<section class="resource-section" data-section="{{.ID}}">
        <div class="section-header"><h2>{{.Title}}</h2>
        <span class="section-count">{{len .Cards}} items</span></div>
        <div class="grid">
        {{range .Cards}}<a class="resource-card" href="{{.Href}}" data-search="{{.Search}}"><span class="resource-type">{{.Category}}</span><h3>{{.Title}}</h3><p>{{.Description}}</p><code>{{.Filename}}</code></a>
        {{end}}</div>
        </section>
        {{end}}
        <footer>Maintained in <code>autonomy414941/devtoolbox</code> · Run <code>devtoolbox index</code> after adding new pages.</footer>
    </main>
    <script>
        const searchInput = document.getElementById("search");
        const cards = Array.from(document.querySelectorAll(".resource-card"));
        const sections = Array.from(document.querySelectorAll(".resource-section"));

        function applyFilter() {
            const term = searchInput.value.trim().toLowerCase();
            cards.forEach((card) => {
                const haystack = card.dataset.search || "";
                card.classList.toggle("hidden", term.length > 0 && !haystack.includes(term));
            });

            sections.forEach((section) => {
                const visibleCards = section.querySelectorAll(".resource-card:not(.hidden)").length;
                section.classList.toggle("hidden", visibleCards === 0);
            });
        }

        searchInput.addEventListener("input", applyFilter);
    </script>
</body>
</html>
`
