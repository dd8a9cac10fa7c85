package alert

import "fmt"

// CriticalSubject is the subject line of every missed-dose alert.
const CriticalSubject = "CRITICAL: Missed Medication Alert"

// MissedDoseHTML renders the safety-net alert body the cron check sends,
// including the time the miss was detected.
func MissedDoseHTML(patientName, medicineName, scheduledTime, currentTime string) string {
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; padding: 20px; border: 2px solid #e11d48; border-radius: 10px;">
			<h2 style="color: #e11d48;">Critical Missed Medication</h2>
			<p>Hi Caretaker,</p>
			<p>Our safety net system has detected that <strong>%s</strong> has missed their scheduled dose of <strong>%s</strong>.</p>
			<p><strong>Scheduled Time:</strong> %s</p>
			<p><strong>Current Time:</strong> %s</p>
			<hr />
			<p style="font-size: 12px; color: #666;">This is an automated safety alert from MediCare Companion.</p>
		</div>`,
		patientName, medicineName, scheduledTime, currentTime)
}

// CriticalNoticeHTML renders the on-demand critical alert body.
func CriticalNoticeHTML(patientName, medicineName, scheduledTime string) string {
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; padding: 24px; border: 2px solid #e11d48; border-radius: 12px; background-color: #fffafb;">
			<h2 style="color: #e11d48; margin-top: 0;">&#9888;&#65039; Critical Medication Missed</h2>
			<p style="font-size: 16px; color: #1e293b;">
				This is an urgent alert that <strong>%s</strong> has missed their scheduled medication.
			</p>
			<div style="background-color: #fff; padding: 16px; border-radius: 8px; border: 1px solid #fee2e2;">
				<p style="margin: 0; color: #64748b;">Medication: <strong style="color: #0f172a;">%s</strong></p>
				<p style="margin: 8px 0 0 0; color: #64748b;">Scheduled Time: <strong style="color: #0f172a;">%s</strong></p>
			</div>
			<p style="margin-top: 20px; color: #475569; font-style: italic;">
				Please check on the patient as soon as possible.
			</p>
			<hr style="border: none; border-top: 1px solid #fee2e2; margin: 24px 0;" />
			<p style="font-size: 12px; color: #94a3b8;">MediCare Companion Safety Net System</p>
		</div>`,
		patientName, medicineName, scheduledTime)
}

// ReminderHTML renders the friendly reminder body.
func ReminderHTML(patientName, medicineName string) string {
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
			<h2 style="color: #2563eb;">Medication Reminder</h2>
			<p>Hi Caretaker,</p>
			<p>This is a helpful reminder to assist <strong>%s</strong> with their medication: <strong>%s</strong>.</p>
			<hr />
			<p style="font-size: 12px; color: #666;">MediCare Companion - Your Digital Care Assistant.</p>
		</div>`,
		patientName, medicineName)
}
