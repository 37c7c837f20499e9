package format

// The doc rendering ships a self-contained HTML page styled after Ant
// Design's Collapse component, so the file reads well when opened
// directly in a browser. No scripts; <details>/<summary> does the work.

const docHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{title}</title>
<style>
  :root {
    --color-bg-container: #ffffff;
    --color-bg-elevated: #fafafa;
    --color-border: #d9d9d9;
    --color-text: rgba(0, 0, 0, 0.88);
    --color-text-secondary: rgba(0, 0, 0, 0.65);
    --color-primary: #1677ff;
    --font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto,
                   'Helvetica Neue', Arial, 'Noto Sans', sans-serif;
    --border-radius: 8px;
    --padding-lg: 24px;
    --padding-md: 16px;
    --padding-sm: 12px;
  }

  *, *::before, *::after { box-sizing: border-box; }

  body {
    font-family: var(--font-family);
    font-size: 15px;
    line-height: 1.5714;
    color: var(--color-text);
    background: linear-gradient(135deg, #f0f2f5 0%, #e8ecf1 100%);
    min-height: 100vh;
    margin: 0;
    padding: var(--padding-lg);
    -webkit-font-smoothing: antialiased;
  }

  .container {
    max-width: 800px;
    margin: 0 auto;
    background: var(--color-bg-container);
    border-radius: var(--border-radius);
    box-shadow: 0 2px 8px rgba(0, 0, 0, 0.06), 0 1px 2px rgba(0, 0, 0, 0.04);
    padding: var(--padding-lg);
  }

  h1 {
    font-weight: 600;
    font-size: 34px;
    line-height: 1.2;
    margin: 0 0 var(--padding-lg) 0;
    padding-bottom: var(--padding-sm);
    border-bottom: 2px solid var(--color-primary);
  }

  .collapse {
    background: var(--color-bg-elevated);
    border-radius: var(--border-radius);
    box-shadow: 0 1px 4px rgba(0, 0, 0, 0.06);
    overflow: hidden;
  }

  details {
    border-bottom: 1px solid var(--color-border);
  }

  details:last-child {
    border-bottom: none;
  }

  summary {
    display: flex;
    align-items: center;
    gap: 8px;
    padding: 14px var(--padding-md);
    cursor: pointer;
    font-family: 'SF Mono', 'Cascadia Code', 'Consolas', monospace;
    color: var(--color-text-secondary);
    background: var(--color-bg-elevated);
    list-style: none;
    user-select: none;
    white-space: nowrap;
    overflow: hidden;
    text-overflow: ellipsis;
    transition: background 0.25s ease;
  }

  summary:hover {
    background: linear-gradient(90deg, var(--color-bg-container) 0%, var(--color-bg-elevated) 100%);
  }

  details[open] > summary {
    background: rgba(22, 119, 255, 0.04);
  }

  summary::-webkit-details-marker { display: none; }
  summary::marker { display: none; content: ""; }

  summary::before {
    content: "";
    display: inline-block;
    width: 12px;
    height: 12px;
    background: url("data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 16 16'%3E%3Cpath d='M6 3l5 5-5 5' fill='none' stroke='rgba(0,0,0,0.45)' stroke-width='1.5' stroke-linecap='round' stroke-linejoin='round'/%3E%3C/svg%3E") center / contain no-repeat;
    flex-shrink: 0;
    transition: transform 0.25s ease;
  }

  details[open] > summary::before {
    transform: rotate(90deg);
  }

  summary .timestamp {
    font-size: 12px;
    font-weight: 500;
    color: var(--color-primary);
    background: rgba(22, 119, 255, 0.1);
    border: 1px solid rgba(22, 119, 255, 0.18);
    padding: 2px 8px;
    border-radius: 4px;
    flex-shrink: 0;
  }

  .panel-content {
    padding: var(--padding-md);
    margin-left: var(--padding-md);
    border-left: 2px solid var(--color-primary);
    color: var(--color-text-secondary);
    line-height: 1.9;
    background: var(--color-bg-container);
  }
</style>
</head>
<body>
<div class="container">
<h1>{title}</h1>
<div class="collapse">
`

const docFoot = `
</div>
</div>
</body>
</html>`
