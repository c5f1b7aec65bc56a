package handlers

import (
	"encoding/json"
	"net/http"

	"stonebranch/internal/config"
	"stonebranch/internal/contact"
)

// ContactPageHandler serves the GET /contact page: the form, the Turnstile
// widget adapter, and the submit state machine, all rendered inline.
func ContactPageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tsScript := ""
	tsWidget := ""
	if config.Cfg.TurnstileSiteKey != "" {
		tsScript = `<script src="https://challenges.cloudflare.com/turnstile/v0/api.js" async defer></script>`
		tsWidget = `<div class="form-field"><div id="turnstile-slot"></div></div>`
	}

	body := `
<section class="section reveal">
<div class="container">
<div class="section-kicker">Contact</div>
<h1 class="section-title">Start a conversation with Stonebranch.</h1>
<p class="section-subtitle">Tell us about your business and what you need help with. We'll reply by email. No spam. No pressure.</p>
</div>
</section>

<section class="section section-band reveal">
<div class="container">
<div class="section-kicker">Send a message</div>
<h2 class="section-title">We'll get back to you with next steps.</h2>
<div class="card" style="margin-top:24px">
<form id="contact-form" novalidate>
<div class="form-row">
<div class="form-field"><label for="name">Your name</label><input id="name" name="name" type="text" placeholder="Jane Doe" required></div>
<div class="form-field"><label for="business">Business name</label><input id="business" name="business" type="text" placeholder="Example: Southern Elite Bin Cleaning"></div>
</div>
<div class="form-row">
<div class="form-field"><label for="location">Location / service area</label><input id="location" name="location" type="text" placeholder="City / region (e.g., Summerville, SC)"></div>
<div class="form-field"><label for="email">Best email to reach you</label><input id="email" name="email" type="email" placeholder="you@example.com" required></div>
</div>
<div class="form-field"><label for="help">What do you need help with?</label><textarea id="help" name="help" rows="4" placeholder="Scheduling chaos, missed leads, follow-up, review systems, internal handoffs..." required></textarea></div>
<div class="form-field"><label for="systems">What are you currently using for scheduling, communication, or CRM?</label><textarea id="systems" name="systems" rows="3" placeholder="Example: Google Calendar + Gmail + Stripe, Jobber, spreadsheets, etc."></textarea></div>
` + tsWidget + `
<div class="form-actions">
<button type="submit" id="contact-submit" class="btn btn-primary">Send message</button>
<span class="form-note">We'll reply by email. No spam. No pressure.</span>
</div>
<p class="form-note" id="contact-status" style="margin-top:12px"></p>
</form>
</div>
</div>
</section>

<script>
(function(){
var form=document.getElementById('contact-form');
var btn=document.getElementById('contact-submit');
var note=document.getElementById('contact-status');
var slot=document.getElementById('turnstile-slot');

// Widget adapter. The token lives in this closure; the widget is rendered
// exactly once behind an explicit flag, and the availability poll is stopped
// as soon as rendering happens.
var token='';
var rendered=false;
var widgetId=null;
var poll=null;

function renderWidget(){
if(rendered||!slot||!window.turnstile)return;
rendered=true;
widgetId=window.turnstile.render(slot,{
sitekey:'` + config.Cfg.TurnstileSiteKey + `',
theme:'dark',
callback:function(t){token=t;},
'expired-callback':function(){token='';},
'error-callback':function(){token='';}
});
}

if(slot){
poll=setInterval(function(){
if(window.turnstile){renderWidget();clearInterval(poll);poll=null;}
},250);
window.addEventListener('pagehide',function(){if(poll){clearInterval(poll);poll=null;}});
}

// Invalidate the token after every attempt so a retry needs a fresh challenge.
function resetWidget(){
token='';
if(rendered&&window.turnstile){try{window.turnstile.reset(widgetId);}catch(e){}}
}

// Form controller: idle -> submitting -> success | error.
var status='idle';
function setStatus(next,msg){
status=next;
btn.disabled=(next==='submitting');
btn.textContent=(next==='submitting')?'Sending...':'Send message';
note.textContent=msg||'';
note.className='form-note'+(next==='error'?' is-error':next==='success'?' is-success':'');
}

form.addEventListener('submit',function(e){
e.preventDefault();
if(status==='submitting')return;

var payload={
name:form.name.value.trim(),
business:form.business.value.trim(),
location:form.location.value.trim(),
email:form.email.value.trim(),
help:form.help.value.trim(),
systems:form.systems.value.trim(),
verificationToken:token
};

if(!payload.name||!payload.email||!payload.help){
setStatus('error','Please fill in your name, email, and what you need help with.');
return;
}
if(slot&&!token){
setStatus('error','Please complete the spam check.');
return;
}

setStatus('submitting','');

fetch('/api/contact',{
method:'POST',
headers:{'Content-Type':'application/json'},
body:JSON.stringify(payload)
})
.then(function(res){
return res.json().catch(function(){return null;}).then(function(data){
if(!res.ok){
setStatus('error',(data&&data.error)||'Something went wrong. Please try again.');
resetWidget();
return;
}
setStatus('success',"Message sent. We'll get back to you soon.");
form.reset();
resetWidget();
});
})
.catch(function(){
setStatus('error','Something went wrong. Please try again.');
resetWidget();
});
});
})();
</script>`

	writePage(w,
		"Contact — Stonebranch Capital LLC",
		"Start a conversation with Stonebranch Capital about automation, systems, or partnership.",
		"/contact", tsScript, body)
}

// ContactAPI handles POST /api/contact using the injected submission service.
type ContactAPI struct {
	Service *contact.Service
}

func NewContactAPI(svc *contact.Service) *ContactAPI {
	return &ContactAPI{Service: svc}
}

func (a *ContactAPI) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload contact.SubmissionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeOutcome(w, contact.Outcome{
			Status: http.StatusInternalServerError,
			Error:  "Unexpected error sending message.",
		})
		return
	}
	defer r.Body.Close()

	writeOutcome(w, a.Service.Process(r.Context(), payload))
}

func writeOutcome(w http.ResponseWriter, o contact.Outcome) {
	resp := map[string]interface{}{"ok": o.OK}
	if o.Error != "" {
		resp["error"] = o.Error
	}
	if o.Codes != nil {
		resp["codes"] = o.Codes
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(o.Status)
	json.NewEncoder(w).Encode(resp)
}
