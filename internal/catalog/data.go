package catalog

// defaultPrograms is the built-in 2024 dataset. Approximate values; the
// authoritative source is the national placement atlas.
var defaultPrograms = []Program{
	{"Hacettepe Üniversitesi", "Tıp", "Ankara", "SAY", 489.2, 498.5, 748, 350, "state"},
	{"İstanbul Üniversitesi", "Tıp", "İstanbul", "SAY", 486.1, 497.8, 1100, 450, "state"},
	{"Ankara Üniversitesi", "Tıp", "Ankara", "SAY", 482.5, 495.2, 2200, 400, "state"},
	{"Ege Üniversitesi", "Tıp", "İzmir", "SAY", 479.8, 493.6, 3500, 350, "state"},
	{"Gazi Üniversitesi", "Tıp", "Ankara", "SAY", 478.3, 492.1, 4200, 320, "state"},
	{"Dokuz Eylül Üniversitesi", "Tıp", "İzmir", "SAY", 475.2, 490.8, 5800, 300, "state"},
	{"Erciyes Üniversitesi", "Tıp", "Kayseri", "SAY", 460.5, 480.3, 18000, 300, "state"},
	{"İnönü Üniversitesi", "Tıp", "Malatya", "SAY", 455.2, 475.1, 25000, 280, "state"},

	{"Hacettepe Üniversitesi", "Diş Hekimliği", "Ankara", "SAY", 472.5, 488.3, 7200, 100, "state"},
	{"İstanbul Üniversitesi", "Diş Hekimliği", "İstanbul", "SAY", 468.7, 485.1, 9800, 120, "state"},

	{"Hacettepe Üniversitesi", "Eczacılık", "Ankara", "SAY", 462.1, 478.5, 16000, 150, "state"},
	{"İstanbul Üniversitesi", "Eczacılık", "İstanbul", "SAY", 458.3, 475.2, 20000, 160, "state"},

	{"Boğaziçi Üniversitesi", "Bilgisayar Mühendisliği", "İstanbul", "SAY", 482.3, 497.2, 2400, 120, "state"},
	{"ODTÜ", "Bilgisayar Mühendisliği", "Ankara", "SAY", 478.9, 496.1, 3800, 180, "state"},
	{"İTÜ", "Bilgisayar Mühendisliği", "İstanbul", "SAY", 475.6, 493.8, 5500, 180, "state"},
	{"Hacettepe Üniversitesi", "Bilgisayar Mühendisliği", "Ankara", "SAY", 470.2, 490.1, 8500, 150, "state"},
	{"Yıldız Teknik Üniversitesi", "Bilgisayar Mühendisliği", "İstanbul", "SAY", 458.1, 480.5, 20500, 150, "state"},
	{"Ankara Üniversitesi", "Bilgisayar Mühendisliği", "Ankara", "SAY", 445.2, 470.3, 38000, 120, "state"},

	{"Boğaziçi Üniversitesi", "Elektrik-Elektronik Mühendisliği", "İstanbul", "SAY", 474.1, 494.5, 6200, 120, "state"},
	{"ODTÜ", "Elektrik-Elektronik Mühendisliği", "Ankara", "SAY", 472.5, 492.3, 7000, 200, "state"},
	{"İTÜ", "Elektrik-Elektronik Mühendisliği", "İstanbul", "SAY", 465.8, 488.1, 12500, 180, "state"},

	{"ODTÜ", "Makine Mühendisliği", "Ankara", "SAY", 465.2, 488.5, 13000, 240, "state"},
	{"İTÜ", "Makine Mühendisliği", "İstanbul", "SAY", 460.8, 485.2, 17000, 220, "state"},

	{"ODTÜ", "İnşaat Mühendisliği", "Ankara", "SAY", 448.5, 478.2, 32000, 220, "state"},
	{"İTÜ", "İnşaat Mühendisliği", "İstanbul", "SAY", 443.2, 472.5, 40000, 200, "state"},

	{"Boğaziçi Üniversitesi", "Endüstri Mühendisliği", "İstanbul", "SAY", 470.8, 491.2, 8200, 100, "state"},
	{"ODTÜ", "Endüstri Mühendisliği", "Ankara", "SAY", 462.5, 485.8, 15500, 150, "state"},

	{"Anadolu Üniversitesi", "Adalet (Ön Lisans)", "Eskişehir", "TYT", 280.5, 340.2, 350000, 500, "state"},
	{"İstanbul Üniversitesi", "Sağlık Yönetimi (Ön Lisans)", "İstanbul", "TYT", 295.3, 355.1, 280000, 200, "state"},
	{"Ankara Üniversitesi", "Çocuk Gelişimi (Ön Lisans)", "Ankara", "TYT", 270.8, 330.5, 400000, 150, "state"},

	{"Koç Üniversitesi", "Tıp", "İstanbul", "SAY", 485.5, 497.8, 1300, 100, "foundation"},
	{"Koç Üniversitesi", "Bilgisayar Mühendisliği", "İstanbul", "SAY", 468.2, 490.5, 10000, 80, "foundation"},
	{"Sabancı Üniversitesi", "Mühendislik", "İstanbul", "SAY", 455.8, 482.3, 23000, 150, "foundation"},
	{"Bilkent Üniversitesi", "Bilgisayar Mühendisliği", "Ankara", "SAY", 462.5, 485.8, 15000, 100, "foundation"},
	{"Koç Üniversitesi", "Hukuk", "İstanbul", "EA", 455.2, 478.3, 5800, 80, "foundation"},
	{"Özyeğin Üniversitesi", "İşletme", "İstanbul", "EA", 390.5, 425.8, 75000, 120, "foundation"},
}
