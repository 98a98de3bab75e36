package server

// FixturePage is the static application form document. It is fully
// self-contained (inline styles and script) so it behaves identically
// whether served over HTTP or opened from a local file.
//
// Contract with the page model:
//   - every field declares a stable data-testid and an accessible role/name
//   - the three conditional blocks are keyed by the account-type selector
//     values (individual, business, institutional) and are mutually
//     exclusive; de-selecting a block clears its inputs
//   - submission validates username (>=3), password (>=6), email shape and
//     the active variant's fields; success reveals the secure area with a
//     token of the form JWT-<digits>-<word>, failure populates the status
//     region with a reason
const FixturePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Account Application</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 640px;
            margin: 50px auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .container {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 { color: #333; margin-bottom: 10px; }
        label { display: block; margin-top: 14px; color: #444; font-weight: 500; }
        input, select {
            width: 100%;
            padding: 10px;
            margin-top: 6px;
            border: 1px solid #ccc;
            border-radius: 4px;
            font-size: 15px;
            box-sizing: border-box;
        }
        button {
            background: #4285f4;
            color: white;
            border: none;
            padding: 12px 24px;
            border-radius: 4px;
            cursor: pointer;
            font-size: 16px;
            margin-top: 20px;
        }
        button:hover { background: #3367d6; }
        fieldset {
            border: 1px solid #ddd;
            border-radius: 4px;
            margin-top: 16px;
            padding: 12px;
        }
        legend { color: #666; padding: 0 6px; }
        .hidden { display: none; }
        #status {
            margin-top: 20px;
            padding: 15px;
            border-radius: 4px;
            font-weight: 500;
        }
        .status-ok { background: #d4edda; color: #155724; }
        .status-error { background: #f8d7da; color: #721c24; }
        #secure {
            margin-top: 20px;
            padding: 20px;
            background: #e8f4fc;
            border-radius: 4px;
        }
        #secure code {
            background: #f1f3f4;
            padding: 2px 6px;
            border-radius: 3px;
            font-family: 'SF Mono', Consolas, monospace;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Account Application</h1>

        <form id="application" onsubmit="return false;">
            <label for="username">Username</label>
            <input id="username" data-testid="username" role="textbox" aria-label="Username" type="text">

            <label for="password">Password</label>
            <input id="password" data-testid="password" role="textbox" aria-label="Password" type="password">

            <label for="email">Email</label>
            <input id="email" data-testid="email" role="textbox" aria-label="Email" type="text">

            <label for="account-type">Account type</label>
            <select id="account-type" data-testid="account-type" role="combobox" aria-label="Account type" onchange="selectVariant(this.value)">
                <option value="" selected>Select account type</option>
                <option value="individual">Individual</option>
                <option value="business">Business</option>
                <option value="institutional">Institutional</option>
            </select>

            <fieldset id="individual-fields" data-testid="individual-fields" class="hidden">
                <legend>Individual</legend>
                <p>No additional information required.</p>
            </fieldset>

            <fieldset id="business-fields" data-testid="business-fields" class="hidden">
                <legend>Business</legend>
                <label for="company">Company</label>
                <input id="company" data-testid="company" role="textbox" aria-label="Company" type="text">
                <label for="tax-id">Tax ID</label>
                <input id="tax-id" data-testid="tax-id" role="textbox" aria-label="Tax ID" type="text">
            </fieldset>

            <fieldset id="institutional-fields" data-testid="institutional-fields" class="hidden">
                <legend>Institutional</legend>
                <label for="institution">Institution</label>
                <input id="institution" data-testid="institution" role="textbox" aria-label="Institution" type="text">
                <label for="accreditation-id">Accreditation ID</label>
                <input id="accreditation-id" data-testid="accreditation-id" role="textbox" aria-label="Accreditation ID" type="text">
            </fieldset>

            <button id="submit" data-testid="submit" role="button" aria-label="Submit application" onclick="submitApplication()">Submit application</button>
        </form>

        <div id="status" data-testid="status-message" role="status" class="hidden"></div>

        <div id="secure" data-testid="secure-area" class="hidden">
            <h2>Secure Area</h2>
            <p>Your access token: <code id="token" data-testid="token"></code></p>
            <label for="region">Region</label>
            <select id="region" data-testid="region" role="combobox" aria-label="Region">
                <option value="us-east" selected>US East</option>
                <option value="eu-west">EU West</option>
                <option value="ap-south">AP South</option>
            </select>
        </div>
    </div>

    <script>
        const VARIANTS = ['individual', 'business', 'institutional'];
        const EMAIL_RE = /^[^@\s]+@[^@\s]+\.[^@\s]+$/;
        const TOKEN_WORDS = ['alpha', 'bravo', 'charlie', 'delta', 'echo'];

        function selectVariant(value) {
            for (const v of VARIANTS) {
                const block = document.getElementById(v + '-fields');
                if (v === value) {
                    block.classList.remove('hidden');
                } else {
                    block.classList.add('hidden');
                    // Clearing on de-select is the contract: re-selecting a
                    // variant must show empty fields, never stale data.
                    for (const input of block.querySelectorAll('input')) {
                        input.value = '';
                    }
                }
            }
        }

        function setStatus(message, ok) {
            const status = document.getElementById('status');
            status.textContent = message;
            status.className = ok ? 'status-ok' : 'status-error';
        }

        function validate() {
            const username = document.getElementById('username').value;
            const password = document.getElementById('password').value;
            const email = document.getElementById('email').value;
            const variant = document.getElementById('account-type').value;

            if (username.length < 3) return 'Username must be at least 3 characters.';
            if (password.length < 6) return 'Password must be at least 6 characters.';
            if (!EMAIL_RE.test(email)) return 'Enter a valid email address.';
            if (variant === 'business') {
                if (!document.getElementById('company').value ||
                    !document.getElementById('tax-id').value) {
                    return 'Complete the business fields.';
                }
            }
            if (variant === 'institutional') {
                if (!document.getElementById('institution').value ||
                    !document.getElementById('accreditation-id').value) {
                    return 'Complete the institutional fields.';
                }
            }
            return '';
        }

        function submitApplication() {
            const reason = validate();
            if (reason !== '') {
                setStatus(reason, false);
                return;
            }

            const word = TOKEN_WORDS[Math.floor(Math.random() * TOKEN_WORDS.length)];
            document.getElementById('token').textContent = 'JWT-' + Date.now() + '-' + word;
            document.getElementById('application').classList.add('hidden');
            document.getElementById('secure').classList.remove('hidden');
            setStatus('Application submitted.', true);
        }
    </script>
</body>
</html>`
