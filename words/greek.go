package words

// GreekWords is the default secret-word pool.
var GreekWords = []string{
	// Ζώα (Animals)
	"σκύλος", "γάτα", "λιοντάρι", "ελέφαντας", "αρκούδα", "τίγρης", "καμήλα", "δελφίνι",
	"αετός", "πεταλούδα", "μέλισσα", "κόκορας", "κότα", "αγελάδα", "πρόβατο", "κατσίκα",
	"άλογο", "γαϊδούρι", "γουρούνι", "κουνέλι", "χάμστερ", "παπαγάλος", "κανάριο", "χελώνα",
	"ψάρι", "καρχαρίας", "φάλαινα", "πιγκουίνος", "φλαμίνγκο", "στρουθοκάμηλος", "καγκουρό", "κάστορας",
	"μυρμήγκι", "αράχνη", "σκαντζόχοιρος", "νυχτερίδα", "ιππόκαμπος", "μέδουσα", "χταπόδι", "καβούρι",

	// Φαγητό (Food)
	"ψωμί", "τυρί", "γάλα", "κρέας", "αυγό", "μήλο", "μπανάνα", "σταφύλι",
	"πορτοκάλι", "λεμόνι", "ντομάτα", "αγγούρι", "κρεμμύδι", "σκόρδο", "πατάτα", "καρότο",
	"σπανάκι", "μαρούλι", "ρύζι", "μακαρόνια", "πίτσα", "σουβλάκι", "μουσακάς", "παστίτσιο",
	"φασολάδα", "γεμιστά", "τυρόπιτα", "σπανακόπιτα", "μπακλαβάς", "γλυκό", "παγωτό", "σοκολάτα",
	"καφές", "τσάι", "χυμός", "νερό", "κρασί", "μπίρα", "ψητό", "σούπα", "σαλάτα", "φρούτα",

	// Αντικείμενα (Objects)
	"τραπέζι", "καρέκλα", "κρεβάτι", "παράθυρο", "πόρτα", "κλειδί", "βιβλίο", "στυλό",
	"τηλέφωνο", "υπολογιστής", "τηλεόραση", "ψυγείο", "κουζίνα", "αυτοκίνητο", "ποδήλατο", "τρένο",
	"αεροπλάνο", "καράβι", "ρολόι", "γυαλιά", "καπέλο", "παπούτσι", "μπλούζα", "παντελόνι",
	"φόρεμα", "τσάντα", "ομπρέλα", "σάκος", "κουτάλι", "πιρούνι", "μαχαίρι", "πιάτο",
	"φανάρι", "κερί", "καμινάδα", "μπαλόνι", "κούκλα", "μπάλα", "παιχνίδι", "χαρταετός",

	// Επαγγέλματα (Professions)
	"γιατρός", "δάσκαλος", "αστυνομικός", "πυροσβέστης", "μηχανικός", "δικηγόρος", "καλλιτέχνης", "μουσικός",
	"ζωγράφος", "συγγραφέας", "δημοσιογράφος", "μάγειρας", "σερβιτόρος", "ταξιτζής", "καθαριστής", "κτηνίατρος",
	"οδηγός", "πιλότος", "ναυτικός", "στρατιώτης", "κομμωτής", "κουρέας", "φαρμακοποιός", "νοσοκόμα",
	"αρχιτέκτονας", "προγραμματιστής", "λογιστής", "πωλητής", "δερματολόγος", "οδοντίατρος", "ψυχολόγος", "κτηματομεσίτης",
	"μαθηματικός", "φυσικός", "χημικός", "βιολόγος", "γεωλόγος", "αστρονόμος", "μετεωρολόγος", "αρχαιολόγος",

	// Χρώματα (Colors)
	"κόκκινο", "μπλε", "κίτρινο", "πράσινο", "μαύρο", "άσπρο", "γκρι", "καφέ",
	"ροζ", "μοβ", "πορτοκαλί", "μπεζ", "χρυσό", "ασημί", "μπορντό", "τιρκουάζ",
	"φούξια", "λιλά", "κρεμ", "μαρόν", "ακουαμαρίνα", "κοραλί", "μαγικό", "νέον",

	// Φύση (Nature)
	"δέντρο", "λουλούδι", "γρασίδι", "φύλλο", "κλαδί", "ρίζα", "καρπός", "σπόρος",
	"βουνό", "θάλασσα", "ποτάμι", "λίμνη", "νησί", "παραλία", "πέτρα", "άμμος",
	"ήλιος", "φεγγάρι", "αστέρι", "σύννεφο", "βροχή", "χιόνι", "αέρας", "φωτιά",
	"ουρανός", "γη", "νερό", "πάγος", "ομίχλη", "καταιγίδα", "ουράνιο", "τσουνάμι",
	"δάσος", "κοιλάδα", "πεδίο", "ερημα", "παγετώνας", "καταρράκτης", "σπηλιά", "μαντίλα",

	// Αθλήματα (Sports)
	"ποδόσφαιρο", "μπάσκετ", "τένις", "βόλεϊ", "κολύμβηση", "τρέξιμο", "ποδηλασία", "σκι",
	"γκολφ", "μποξ", "πάλη", "γυμναστική", "πινγκ-πονγκ", "μπέιζμπολ", "χόκεϊ", "καράτε",
	"ιστιοπλοΐα", "αλπινισμός", "σκέιτμπορντ", "σέρφινγκ", "καμπεί", "αιμάτωκα", "στίβος", "κωπηλασία",

	// Μουσική (Music)
	"πιάνο", "κιθάρα", "βιολί", "τύμπανα", "φλάουτο", "τρομπέτα", "σαξόφωνο", "αρμόνιο",
	"τραγούδι", "μελωδία", "ρυθμός", "χορός", "όπερα", "συναυλία", "ορχήστρα", "μπάντα",
	"μπουζούκι", "λαούτο", "κλαρίνο", "ταμπούρλο", "φωνή", "στίχοι", "νότα", "συμφωνία",

	// Σώμα (Body)
	"κεφάλι", "μάτι", "μύτη", "στόμα", "αυτί", "μαλλιά", "χέρι", "δάχτυλο",
	"πόδι", "πέλμα", "καρδιά", "εγκέφαλος", "στομάχι", "πλάτη", "μπράτσο", "γόνατο",
	"αγκώνας", "ώμος", "λαιμός", "μέτωπο", "φρύδι", "βλεφαρίδα", "μάγουλο", "σαγόνι",

	// Σπίτι (House)
	"σαλόνι", "κουζίνα", "υπνοδωμάτιο", "μπάνιο", "μπαλκόνι", "κήπος", "γκαράζ", "σκάλα",
	"οροφή", "τοίχος", "πάτωμα", "ταβάνι", "φωτιστικό", "καναπές", "ντουλάπα", "κομοδίνο",
	"καθρέφτης", "κουρτίνα", "χαλί", "μαξιλάρι", "κουβέρτα", "σεντόνι", "πετσέτα", "τουαλέτα",

	// Σχολείο (School)
	"μάθημα", "μαθητής", "τετράδιο", "μολύβι", "πίνακας", "θρανίο", "τσάντα", "διάλειμμα",
	"εξετάσεις", "βαθμός", "αίθουσα", "προαύλιο", "βιβλιοθήκη", "εργαστήριο", "γυμναστήριο", "κυλικείο",

	// Τεχνολογία (Technology)
	"ίντερνετ", "ιστοσελίδα", "εμαίλ", "βίντεο", "φωτογραφία", "εφαρμογή", "παιχνίδι", "κάμερα",
	"μικρόφωνο", "ηχείο", "οθόνη", "πληκτρολόγιο", "ποντίκι", "εκτυπωτής", "σκάνερ", "κεραία",

	// Μεταφορά (Transportation)
	"λεωφορείο", "μετρό", "ταξί", "μοτοσικλέτα", "σκάφος", "ελικόπτερο", "φορτηγό", "ασθενοφόρο",
}
